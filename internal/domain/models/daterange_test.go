package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateRangeIsValid(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.True(t, DateRange{Start: start, End: start.Add(time.Hour)}.IsValid())
	assert.False(t, DateRange{Start: start, End: start}.IsValid())
	assert.False(t, DateRange{Start: start.Add(time.Hour), End: start}.IsValid())
}

func TestDateRangeChunks(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("diez días en chunks semanales da dos chunks", func(t *testing.T) {
		r := DateRange{Start: start, End: start.AddDate(0, 0, 10)}

		chunks := r.Chunks(ChunkWidth)

		require.Len(t, chunks, 2)
		assert.Equal(t, start, chunks[0].Start)
		assert.Equal(t, start.AddDate(0, 0, 7), chunks[0].End)
		// El último chunk se trunca a los 3 días restantes.
		assert.Equal(t, start.AddDate(0, 0, 7), chunks[1].Start)
		assert.Equal(t, r.End, chunks[1].End)
	})

	t.Run("rango más corto que el ancho da un solo chunk", func(t *testing.T) {
		r := DateRange{Start: start, End: start.AddDate(0, 0, 3)}

		chunks := r.Chunks(ChunkWidth)

		require.Len(t, chunks, 1)
		assert.Equal(t, r, chunks[0])
	})

	t.Run("múltiplo exacto no genera chunk vacío", func(t *testing.T) {
		r := DateRange{Start: start, End: start.AddDate(0, 0, 14)}

		chunks := r.Chunks(ChunkWidth)

		require.Len(t, chunks, 2)
		assert.Equal(t, r.End, chunks[1].End)
	})

	t.Run("sin huecos ni solapamientos", func(t *testing.T) {
		r := DateRange{Start: start, End: start.AddDate(0, 0, 30)}

		chunks := r.Chunks(ChunkWidth)

		require.NotEmpty(t, chunks)
		for i := 1; i < len(chunks); i++ {
			assert.Equal(t, chunks[i-1].End, chunks[i].Start)
		}
		assert.Equal(t, r.Start, chunks[0].Start)
		assert.Equal(t, r.End, chunks[len(chunks)-1].End)
	})

	t.Run("rango inválido devuelve nil", func(t *testing.T) {
		r := DateRange{Start: start, End: start}
		assert.Nil(t, r.Chunks(ChunkWidth))
	})

	t.Run("ancho inválido devuelve nil", func(t *testing.T) {
		r := DateRange{Start: start, End: start.AddDate(0, 0, 10)}
		assert.Nil(t, r.Chunks(0))
	})
}

func TestDateRangeSearchFormat(t *testing.T) {
	r := DateRange{
		Start: time.Date(2024, 1, 5, 13, 45, 0, 0, time.UTC),
		End:   time.Date(2024, 2, 29, 1, 0, 0, 0, time.UTC),
	}

	start, end := r.SearchFormat()

	assert.Equal(t, "2024-01-05", start)
	assert.Equal(t, "2024-02-29", end)
}
