package intake

import "github.com/lifeos/governance/internal/constitution"

// #region steps

var steps = []Step{
	{Key: "energy", Prompt: "⚡ Qual sua energia agora? (0-100)", Group: GroupAssessment},
	{Key: "clarity", Prompt: "🧠 Clareza mental? (0-100)", Group: GroupAssessment},
	{Key: "stress", Prompt: "😰 Nível de estresse? (0-100, alto=ruim)", Group: GroupAssessment},
	{Key: "confidence", Prompt: "💪 Confiança? (0-100)", Group: GroupAssessment},
	{Key: "load", Prompt: "📦 Carga decisória? (0-100, alto=ruim)", Group: GroupAssessment},

	{Key: "revenue", Prompt: "💰 Receita mensal (R$)?", Group: GroupBusiness},
	{Key: "costs", Prompt: "📊 Custos mensais (R$)?", Group: GroupBusiness},
	{Key: "founder_dependence", Prompt: "👤 Dependência do fundador? (0-100)", Group: GroupBusiness},
	{Key: "active_fronts", Prompt: "🎯 Quantas frentes ativas? (1-10)", Group: GroupBusiness},
	{Key: "process_maturity", Prompt: "⚙️ Maturidade de processos? (0-100)", Group: GroupBusiness},
	{Key: "delegation_capacity", Prompt: "🤝 Capacidade de delegação? (0-100)", Group: GroupBusiness},

	{Key: "fin_revenue", Prompt: "💵 Receita financeira mensal (R$)?", Group: GroupFinancial},
	{Key: "cash", Prompt: "🏦 Caixa disponível (R$)?", Group: GroupFinancial},
	{Key: "debt", Prompt: "📉 Dívida total (R$)?", Group: GroupFinancial},
	{Key: "fixed_costs", Prompt: "🔒 Custos fixos mensais (R$)?", Group: GroupFinancial},
	{Key: "intended_leverage", Prompt: "📈 Alavancagem pretendida (R$)?", Group: GroupFinancial},

	{Key: "active_conflicts", Prompt: "⚔️ Conflitos ativos? (0-10)", Group: GroupRelational},
	{Key: "critical_dependencies", Prompt: "🔗 Dependências críticas? (0-10)", Group: GroupRelational},
	{Key: "partner_alignment", Prompt: "🤲 Alinhamento com sócios e parceiros? (0-100)", Group: GroupRelational},
	{Key: "team_stability", Prompt: "👥 Estabilidade do time? (0-100)", Group: GroupRelational},
	{Key: "ecosystem_health", Prompt: "🌱 Saúde do ecossistema? (0-100)", Group: GroupRelational},

	{Key: "description", Prompt: "📝 Descreva a decisão:", Group: GroupDecision, Kind: KindText},
	{
		Key: "type", Prompt: "🏷️ Tipo: existential, structural, strategic ou tactical?", Group: GroupDecision,
		Kind: KindChoice, Default: string(constitution.DecisionTactical),
		Choices: []string{"existential", "structural", "strategic", "tactical"},
	},
	{
		Key: "impact", Prompt: "💥 Impacto: transformational, high, medium ou low?", Group: GroupDecision,
		Kind: KindChoice, Default: "medium",
		Choices: []string{"transformational", "high", "medium", "low"},
	},
}

// Steps returns the intake questions in order.
func Steps() []Step {
	out := make([]Step, len(steps))
	copy(out, steps)
	return out
}

// #endregion steps
