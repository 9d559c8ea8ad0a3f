package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/olprint/backoffice/internal/llm"
	"github.com/olprint/backoffice/internal/types"
	"github.com/spf13/cobra"
)

var testLLMCmd = &cobra.Command{
	Use:   "test-llm",
	Short: "Test the text-generation provider connection",
	Long: `Send a short prompt to the configured text-generation provider.
This helps verify the API key and connectivity before using the AI features.`,
	Args: cobra.NoArgs,
	RunE: testLLMProvider,
}

func init() {
	rootCmd.AddCommand(testLLMCmd)
}

func testLLMProvider(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "🧪 Testing text-generation provider...")

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	p := app.cfg.LLM.Generator
	fmt.Fprintf(out, "🤖 Testing generator (%s/%s)...\n", p.Provider, p.Model)
	generator, err := llm.NewGenerator(&app.cfg.LLM)
	if err != nil {
		return fmt.Errorf("failed to create generator: %w", err)
	}

	testPrompt := `Escreva uma frase curta a apresentar a loja OLPrint,
especializada em impressoras, tinteiros, toners e papéis.

Responda apenas com a frase.`

	response, err := generator.Complete(ctx, testPrompt, map[string]any{
		types.OptMaxTokens: 100,
		types.OptSystem:    "És um assistente conciso de marketing para uma loja de impressão.",
	})
	if err != nil {
		return fmt.Errorf("failed to generate response: %w", err)
	}

	fmt.Fprintf(out, "   ✅ Generated response: %s\n", response)
	fmt.Fprintln(out, "\n🎉 Text-generation provider is working correctly!")
	return nil
}
