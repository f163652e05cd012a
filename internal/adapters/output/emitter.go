// internal/adapters/output/emitter.go
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"intelprobe/internal/core/domain"
	"intelprobe/internal/platform/logx"
)

// Emitter serializa el ResultEnvelope a exactamente una línea JSON en su
// writer. Emitir más de una vez (o ninguna) es violación de contrato; el
// emitter rechaza la segunda emisión.
type Emitter struct {
	w       io.Writer
	logger  logx.Logger
	emitted bool
}

// NewEmitter crea un emitter sobre stdout, el canal de salida del módulo.
func NewEmitter(logger logx.Logger) *Emitter {
	return NewEmitterTo(os.Stdout, logger)
}

// NewEmitterTo crea un emitter sobre un writer arbitrario (testing).
func NewEmitterTo(w io.Writer, logger logx.Logger) *Emitter {
	return &Emitter{
		w:      w,
		logger: logger.With("component", "emitter"),
	}
}

// Emit construye el envelope del resultado y lo escribe como una línea
// JSON UTF-8 terminada en salto de línea.
func (e *Emitter) Emit(prefix string, result *domain.ModuleResult) error {
	if e.emitted {
		return domain.ErrAlreadyEmitted
	}

	envelope := BuildEnvelope(prefix, result, time.Now())

	// json.Encoder no indenta por defecto: una única línea compacta
	enc := json.NewEncoder(e.w)
	if err := enc.Encode(envelope); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrEncodeFailed, err)
	}

	e.emitted = true
	e.logger.Debug("envelope emitted",
		"nodes", len(envelope.Nodes),
		"files", len(envelope.Files),
	)
	return nil
}

// BuildEnvelope empaqueta facts y reporte en el envelope final. Los facts
// conservan su orden de descubrimiento; el reporte, cuando existe, se
// convierte en exactamente un FileArtifact de tipo text.
func BuildEnvelope(prefix string, result *domain.ModuleResult, now time.Time) *domain.ResultEnvelope {
	envelope := domain.NewResultEnvelope()

	for _, fact := range result.Facts {
		envelope.AddNode(fact)
	}

	if result.Report != nil {
		envelope.AddFile(domain.FileArtifact{
			Name:    FileName(prefix, result.Status, result.Target.Value, now),
			Content: result.Report.RenderAt(now),
			Type:    domain.ArtifactTypeText,
		})
	}

	return envelope
}

// FileName construye el nombre determinista del artefacto:
// <prefix>_<target>_<unix-ts>.txt, con variantes <prefix>_failed_ y
// <prefix>_error_ para los desenlaces degradados. El timestamp evita
// colisiones entre invocaciones repetidas contra el mismo target.
func FileName(prefix string, status domain.RunStatus, target string, now time.Time) string {
	switch status {
	case domain.RunStatusFailed:
		prefix += "_failed"
	case domain.RunStatusError:
		prefix += "_error"
	}
	return fmt.Sprintf("%s_%s_%d.txt", prefix, target, now.Unix())
}
