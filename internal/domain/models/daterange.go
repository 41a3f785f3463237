package models

import "time"

// ChunkWidth es el ancho fijo de los sub-rangos que usa la estrategia
// conservadora.
const ChunkWidth = 7 * 24 * time.Hour

// DateRange es un rango semiabierto [Start, End). Ambos instantes llevan zona.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// IsValid reports whether Start < End.
func (r DateRange) IsValid() bool {
	return r.Start.Before(r.End)
}

// Duration returns End - Start.
func (r DateRange) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

// Chunks particiona el rango en sub-rangos consecutivos de ancho fijo.
// El último chunk se trunca para no pasar End; sin huecos ni solapamientos.
func (r DateRange) Chunks(width time.Duration) []DateRange {
	if width <= 0 || !r.IsValid() {
		return nil
	}

	var chunks []DateRange
	current := r.Start
	for current.Before(r.End) {
		chunkEnd := current.Add(width)
		if chunkEnd.After(r.End) {
			chunkEnd = r.End
		}
		chunks = append(chunks, DateRange{Start: current, End: chunkEnd})
		current = chunkEnd
	}
	return chunks
}

// SearchFormat devuelve los extremos en el formato YYYY-MM-DD que espera la
// search API de GitHub.
func (r DateRange) SearchFormat() (string, string) {
	return r.Start.Format("2006-01-02"), r.End.Format("2006-01-02")
}
