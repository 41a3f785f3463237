package ai

// Template para el resumen de contribuciones. El formato de salida es fijo:
// los renderers después inyectan la sección de Low-Level Tasks debajo de
// "## High-Level Tasks Completed", así que el modelo tiene que respetar los
// encabezados tal cual.
const summaryPromptTemplate = `Hi, would you create a more succinct summary based on this list of contributions?

%s

I would like a comprehensive summary that follows this exact format:

# GitHub Contributions Summary - High-Level Tasks

## Overview
- **Total Commits**: [number]
- **Repositories with Contributions**: [number]
- **Time Period**: Based on contributions from [date range]

## High-Level Tasks Completed

### 1. **[Category Name]**
- [Task description 1]
- [Task description 2]
- [Task description 3]

### 2. **[Category Name]**
- [Task description 1]
- [Task description 2]
- [Task description 3]

[Continue with more categories as needed...]

## Key Achievements
- **[Achievement 1]**: [description]
- **[Achievement 2]**: [description]
- **[Achievement 3]**: [description]

## Impact
- [Impact statement 1]
- [Impact statement 2]
- [Impact statement 3]

Please analyze the contributions and group them into logical high-level categories. Focus on the main themes and patterns in the work, not individual commits. Make it professional and strategic, highlighting the key accomplishments and their business impact.`

// GetSummaryPromptTemplate devuelve el template del prompt de resumen. Toma un
// solo %s: el reporte completo de contribuciones.
func GetSummaryPromptTemplate() string {
	return summaryPromptTemplate
}
