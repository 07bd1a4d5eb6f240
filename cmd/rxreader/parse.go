package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"prescription-reader/internal/config"
	"prescription-reader/internal/domain/prescriptions"
	"prescription-reader/internal/platform/logger"
)

type parseOutput struct {
	Prescription prescriptions.PrescriptionData `json:"prescription"`
	Validation   prescriptions.Validation       `json:"validation"`
}

func parseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [file|-]",
		Short: "Parsea texto OCR desde un archivo o stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			rulesFile, _ := cmd.Flags().GetString("rules")

			format = strings.ToLower(strings.TrimSpace(format))
			if format != "json" && format != "text" {
				return fmt.Errorf("unknown format %q (json|text)", format)
			}

			rules, err := (&config.Config{RulesFile: rulesFile}).LoadRules()
			if err != nil {
				return err
			}

			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			svc := prescriptions.NewService(prescriptions.ServiceOptions{
				Parser: prescriptions.NewParser(rules),
				Logger: logger.New(logger.Options{Level: logger.Warn, Out: cmd.ErrOrStderr()}),
			})
			res, err := svc.Parse(cmd.Context(), string(text))
			if err != nil {
				return err
			}

			if format == "text" {
				_, err = io.WriteString(cmd.OutOrStdout(), prescriptions.FormatText(res.Prescription))
				return err
			}
			return writeIndented(cmd.OutOrStdout(), parseOutput{
				Prescription: res.Prescription,
				Validation:   res.Validation,
			})
		},
	}

	cmd.Flags().String("format", "json", "Formato de salida: json o text")
	cmd.Flags().String("rules", os.Getenv("RULES_FILE"), "Archivo de reglas (yaml/json/toml)")
	return cmd
}

func validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [file|-]",
		Short: "Valida datos de receta en JSON (los campos de `parse`)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			strict, _ := cmd.Flags().GetBool("strict")

			raw, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			var data prescriptions.PrescriptionData
			if err := json.Unmarshal(raw, &data); err != nil {
				return fmt.Errorf("decode prescription: %w", err)
			}

			v := prescriptions.Validate(data)
			if err := writeIndented(cmd.OutOrStdout(), v); err != nil {
				return err
			}
			if strict && !v.IsValid {
				return fmt.Errorf("prescription has %d warning(s)", len(v.Warnings))
			}
			return nil
		},
	}

	cmd.Flags().Bool("strict", false, "Termina con error si hay advertencias")
	return cmd
}

// readInput lee el archivo indicado, o stdin si no hay argumento o es "-".
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return b, nil
}

func writeIndented(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
