package models

// Gender values
const (
	GenderHomem  = "HOMEM"
	GenderMulher = "MULHER"
)

// Relationship goals
const (
	GoalNamoro     = "NAMORO"
	GoalCasamento  = "CASAMENTO"
	GoalAmizade    = "AMIZADE"
	GoalConhecendo = "CONHECENDO"
)

// Church attendance frequencies
const (
	FrequencySemanal      = "SEMANAL"
	FrequencyQuinzenal    = "QUINZENAL"
	FrequencyMensal       = "MENSAL"
	FrequencyOcasional    = "OCASIONAL"
	FrequencyNaoFrequenta = "NAO_FREQUENTA"
)

// Interaction types
const (
	InteractionTypeLike      = "like"
	InteractionTypeSuperLike = "superlike"
	InteractionTypePass      = "pass"
)
