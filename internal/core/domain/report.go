// internal/core/domain/report.go
package domain

import (
	"fmt"
	"strings"
	"time"
)

const headerRuleWidth = 50

// Report es el buffer append-only de fragmentos de texto que cada probe
// alimenta durante la ejecución de un módulo. Pertenece en exclusiva a una
// invocación; nunca se comparte entre targets.
type Report struct {
	title    string
	target   string
	stamped  bool
	sections []string
}

// NewReport crea un reporte con la cabecera canónica
// "<title> Report for <target>" subrayada.
func NewReport(title, target string) *Report {
	return &Report{
		title:  title,
		target: target,
	}
}

// NewStampedReport crea un reporte que al renderizar añade la línea final
// "Report Generated: <ts>" propia de los documentos persistidos.
func NewStampedReport(title, target string) *Report {
	r := NewReport(title, target)
	r.stamped = true
	return r
}

// AddSection añade un fragmento al final del reporte. Los fragmentos se
// separan con una línea en blanco al renderizar.
func (r *Report) AddSection(section string) {
	section = strings.TrimRight(section, "\n")
	if section == "" {
		return
	}
	r.sections = append(r.sections, section)
}

// AddSectionf añade un fragmento formateado.
func (r *Report) AddSectionf(format string, args ...any) {
	r.AddSection(fmt.Sprintf(format, args...))
}

// AddErrorSection documenta el fallo aislado de un probe.
func (r *Report) AddErrorSection(label string, err error) {
	r.AddSectionf("%s Error: %v", label, err)
}

// Len retorna el número de secciones acumuladas.
func (r *Report) Len() int {
	return len(r.sections)
}

// Render concatena cabecera y secciones en el documento final.
func (r *Report) Render() string {
	return r.RenderAt(time.Now())
}

// RenderAt renderiza el documento con el instante dado como momento de
// generación (solo visible en reportes stamped).
func (r *Report) RenderAt(now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s Report for %s\n", r.title, r.target)
	b.WriteString(strings.Repeat("=", headerRuleWidth))
	b.WriteString("\n\n")
	for _, s := range r.sections {
		b.WriteString(s)
		b.WriteString("\n\n")
	}
	if r.stamped {
		fmt.Fprintf(&b, "Report Generated: %s\n", now.Format("2006-01-02 15:04:05"))
	}
	return b.String()
}
