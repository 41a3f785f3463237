package models

// StrategyPreference selecciona cómo el orquestador consulta la API remota.
type StrategyPreference string

const (
	StrategyConservative StrategyPreference = "conservative"
	StrategyBulkSearch   StrategyPreference = "bulk"
	StrategyGraphQLBatch StrategyPreference = "graphql"
	// StrategyExhaustive recorre todos los repositorios descubiertos; es el
	// default cuando no se pide ninguna otra estrategia.
	StrategyExhaustive StrategyPreference = "exhaustive"
)

// ResolveStrategy aplica la precedencia fija cuando se piden varias
// estrategias a la vez: Conservative > BulkSearch > GraphQLBatch >
// ExhaustiveEnumeration.
func ResolveStrategy(conservative, bulk, graphql bool) StrategyPreference {
	switch {
	case conservative:
		return StrategyConservative
	case bulk:
		return StrategyBulkSearch
	case graphql:
		return StrategyGraphQLBatch
	default:
		return StrategyExhaustive
	}
}

// TrackOptions agrupa los parámetros de una llamada de adquisición.
type TrackOptions struct {
	Range          DateRange
	IncludePrivate bool
	Strategy       StrategyPreference

	// Optimize usa el descubrimiento por búsqueda; en false se enumeran todos
	// los repositorios de la cuenta. Solo lo consumen las estrategias que
	// trabajan sobre una lista de repositorios (graphql y exhaustiva).
	Optimize bool

	// Limit trunca la lista de repositorios a procesar. 0 = sin límite.
	Limit int
}
