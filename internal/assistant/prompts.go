package assistant

import (
	"fmt"
	"strings"
)

const (
	descriptionSystem = "És um especialista em marketing de uma gráfica em Portugal."
	insightSystem     = "És um consultor de vendas conciso. Respondes numa só frase."
)

// buildDescriptionPrompt creates the marketing copy prompt for a product form.
func buildDescriptionPrompt(brand, name, category, keywords string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "És um especialista em marketing para uma gráfica chamada %s em Portugal.\n", brand)
	sb.WriteString("Escreve uma descrição de produto curta, persuasiva e profissional para venda no site, utilizando Português de Portugal.\n\n")
	fmt.Fprintf(&sb, "Produto: %s\n", strings.TrimSpace(name))
	fmt.Fprintf(&sb, "Categoria: %s\n", strings.TrimSpace(category))
	fmt.Fprintf(&sb, "Características/Keywords: %s\n\n", strings.TrimSpace(keywords))
	sb.WriteString("Formato: Apenas o texto da descrição, sem títulos ou formatação markdown complexa. Máximo de 3 parágrafos curtos.")
	return sb.String()
}

// buildInsightPrompt asks for a one-sentence tip from a sales digest.
func buildInsightPrompt(brand, summary string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Analisa este resumo de dados de vendas da %s e dá uma dica estratégica curta (max 1 frase) ", brand)
	sb.WriteString("para o dono da gráfica melhorar as vendas hoje. Responde em Português de Portugal.\n")
	fmt.Fprintf(&sb, "Dados: %s", strings.TrimSpace(summary))
	return sb.String()
}
