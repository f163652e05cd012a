// internal/adapters/output/emitter_test.go
package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"intelprobe/internal/core/domain"
	"intelprobe/internal/platform/logx"
	"intelprobe/internal/testutil"
)

func newResult(status domain.RunStatus, report *domain.Report, facts ...string) *domain.ModuleResult {
	target := domain.NewTarget("example.com", domain.TargetKindDomain)
	result := domain.NewModuleResult("domain_intel", target, report)
	result.Status = status
	for _, f := range facts {
		result.AddFact(f)
	}
	return result
}

func TestEmitSingleJSONLine(t *testing.T) {
	var buf bytes.Buffer
	emitter := NewEmitterTo(&buf, logx.New())

	report := domain.NewReport("Domain Intelligence", "example.com")
	report.AddSection("DNS Resolution: example.com -> 93.184.216.34")
	result := newResult(domain.RunStatusOK, report, "IP Address: 93.184.216.34")

	testutil.AssertNoError(t, emitter.Emit("domain_intel", result), "emit")

	out := buf.String()
	testutil.AssertTrue(t, strings.HasSuffix(out, "\n"), "output ends with newline")
	testutil.AssertEqual(t, strings.Count(out, "\n"), 1, "exactly one line")

	var envelope domain.ResultEnvelope
	testutil.AssertNoError(t, json.Unmarshal([]byte(out), &envelope), "line is valid JSON")
	testutil.AssertEqual(t, len(envelope.Nodes), 1, "node count")
	testutil.AssertEqual(t, len(envelope.Files), 1, "file count")
	testutil.AssertContains(t, envelope.Files[0].Content, "Domain Intelligence Report for example.com", "report content")
}

func TestEmitOnlyOnce(t *testing.T) {
	var buf bytes.Buffer
	emitter := NewEmitterTo(&buf, logx.New())
	result := newResult(domain.RunStatusOK, domain.NewReport("Test", "example.com"))

	testutil.AssertNoError(t, emitter.Emit("domain_intel", result), "first emit")

	err := emitter.Emit("domain_intel", result)
	testutil.AssertError(t, err, "second emit rejected")
	testutil.AssertTrue(t, err == domain.ErrAlreadyEmitted, "sentinel error returned")
	testutil.AssertEqual(t, strings.Count(buf.String(), "\n"), 1, "still one line")
}

func TestEmitTotalFailureStillProducesEnvelope(t *testing.T) {
	var buf bytes.Buffer
	emitter := NewEmitterTo(&buf, logx.New())

	report := domain.NewReport("Domain Intelligence", "example.com")
	report.AddErrorSection("SSL Certificate", domain.ErrNoProbesAvailable)
	result := newResult(domain.RunStatusOK, report)
	result.AddError("ssl", domain.ErrNoProbesAvailable)

	testutil.AssertNoError(t, emitter.Emit("domain_intel", result), "emit on failure")

	var envelope domain.ResultEnvelope
	testutil.AssertNoError(t, json.Unmarshal(buf.Bytes(), &envelope), "valid JSON")
	testutil.AssertEqual(t, len(envelope.Nodes), 0, "no nodes")
	testutil.AssertEqual(t, len(envelope.Files), 1, "report still attached")

	// Slices vacíos serializan como [], nunca null
	testutil.AssertContains(t, buf.String(), `"nodes":[]`, "nodes serialize as empty array")
}

func TestBuildEnvelopeNilReport(t *testing.T) {
	// hash_detect no produce reporte: cero files en el envelope
	result := newResult(domain.RunStatusOK, nil, "Hash Length: 32 characters", "Most Likely: MD5 or NTLM")

	envelope := BuildEnvelope("hash_detect", result, time.Now())
	testutil.AssertEqual(t, len(envelope.Files), 0, "no files without report")
	testutil.AssertEqual(t, len(envelope.Nodes), 2, "facts become nodes")
	testutil.AssertEqual(t, envelope.Nodes[0], "Hash Length: 32 characters", "node order")
}

func TestFileName(t *testing.T) {
	now := time.Unix(1700000000, 0)

	tests := []struct {
		name   string
		prefix string
		status domain.RunStatus
		want   string
	}{
		{
			name:   "success",
			prefix: "zone_transfer",
			status: domain.RunStatusOK,
			want:   "zone_transfer_example.com_1700000000.txt",
		},
		{
			name:   "refused transfer",
			prefix: "zone_transfer",
			status: domain.RunStatusFailed,
			want:   "zone_transfer_failed_example.com_1700000000.txt",
		},
		{
			name:   "execution error",
			prefix: "zone_transfer",
			status: domain.RunStatusError,
			want:   "zone_transfer_error_example.com_1700000000.txt",
		},
		{
			name:   "domain intel",
			prefix: "domain_intel",
			status: domain.RunStatusOK,
			want:   "domain_intel_example.com_1700000000.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FileName(tt.prefix, tt.status, "example.com", now)
			testutil.AssertEqual(t, got, tt.want, "file name")
		})
	}
}

func TestBuildEnvelopeFileNameMatchesStatus(t *testing.T) {
	now := time.Unix(1700000000, 0)
	report := domain.NewReport("DNS Zone Transfer", "example.com")
	report.AddSection("Status: FAILED")

	result := newResult(domain.RunStatusFailed, report)
	result.Module = "zone_transfer"

	envelope := BuildEnvelope("zone_transfer", result, now)
	testutil.AssertEqual(t, len(envelope.Files), 1, "file count")
	testutil.AssertEqual(t, envelope.Files[0].Name, "zone_transfer_failed_example.com_1700000000.txt", "failed file name")
	testutil.AssertEqual(t, string(envelope.Files[0].Type), "text", "artifact type")
}
