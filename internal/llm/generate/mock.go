package generate

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/olprint/backoffice/internal/types"
)

// MockGenerator answers prompts with canned pt-PT copy so the back office can
// run without a provider account.
type MockGenerator struct {
	model string
}

func NewMockGenerator(model string) *MockGenerator {
	return &MockGenerator{model: model}
}

var promptField = regexp.MustCompile(`(?m)^\s*(Produto|Categoria|Características/Keywords|Dados):\s*(.*)$`)

func (g *MockGenerator) Complete(ctx context.Context, prompt string, opts map[string]any) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fields := map[string]string{}
	for _, m := range promptField.FindAllStringSubmatch(prompt, -1) {
		fields[m[1]] = strings.TrimSpace(m[2])
	}

	if name := fields["Produto"]; name != "" {
		return g.generateDescription(name, fields["Categoria"], fields["Características/Keywords"]), nil
	}
	if data := fields["Dados"]; data != "" {
		return g.generateInsight(data), nil
	}
	return "", nil
}

func (g *MockGenerator) Model() string {
	return g.model + "-mock"
}

func (g *MockGenerator) generateDescription(name, category, keywords string) string {
	desc := fmt.Sprintf("%s é a escolha certa para quem procura qualidade profissional em %s.", name, strings.ToLower(category))
	if keywords != "" {
		desc += fmt.Sprintf(" Destaca-se por: %s.", keywords)
	}
	return desc + "\n\nDisponível já na OLPrint, com entrega rápida em todo o país."
}

func (g *MockGenerator) generateInsight(data string) string {
	lower := strings.ToLower(data)
	switch {
	case strings.Contains(lower, "stock baixo") || (strings.Contains(lower, "estoque") && strings.Contains(lower, "baixo")):
		return "Reponha hoje os produtos com stock baixo antes que as vendas do fim de semana os esgotem."
	case strings.Contains(lower, "pendente"):
		return "Contacte os clientes com pedidos pendentes para fechar as vendas ainda hoje."
	default:
		return "Aproveite o movimento atual para promover consumíveis junto de quem comprou impressoras."
	}
}

// Compile-time interface check
var _ types.Generator = (*MockGenerator)(nil)
