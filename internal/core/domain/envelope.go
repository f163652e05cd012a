// internal/core/domain/envelope.go
package domain

// ArtifactType clasifica el contenido de un FileArtifact. Enum abierto:
// "text" es el único valor definido actualmente.
type ArtifactType string

const (
	// ArtifactTypeText contenido textual plano
	ArtifactTypeText ArtifactType = "text"
)

// String retorna la representación string del tipo.
func (t ArtifactType) String() string {
	return string(t)
}

// FileArtifact es un documento generado por el módulo y devuelto dentro
// del envelope. El nombre incluye target y timestamp unix para que
// invocaciones repetidas contra el mismo target no colisionen.
type FileArtifact struct {
	Name    string       `json:"name"`
	Content string       `json:"content"`
	Type    ArtifactType `json:"type"`
}

// ResultEnvelope es el único output visible de un módulo: una línea JSON
// en stdout. Nodes preserva el orden de descubrimiento de los facts.
// Siempre se produce, incluso cuando todos los probes fallan.
type ResultEnvelope struct {
	Nodes []string       `json:"nodes"`
	Files []FileArtifact `json:"files"`
}

// NewResultEnvelope crea un envelope vacío con slices inicializados para
// que serialice como [] y nunca como null.
func NewResultEnvelope() *ResultEnvelope {
	return &ResultEnvelope{
		Nodes: []string{},
		Files: []FileArtifact{},
	}
}

// AddNode añade un fact al envelope.
func (e *ResultEnvelope) AddNode(fact string) {
	if fact == "" {
		return
	}
	e.Nodes = append(e.Nodes, fact)
}

// AddFile añade un artefacto al envelope.
func (e *ResultEnvelope) AddFile(f FileArtifact) {
	e.Files = append(e.Files, f)
}
