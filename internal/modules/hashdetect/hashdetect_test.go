// internal/modules/hashdetect/hashdetect_test.go
package hashdetect

import (
	"context"
	"testing"
	"time"

	"intelprobe/internal/adapters/output"
	"intelprobe/internal/core/domain"
	"intelprobe/internal/platform/logx"
	"intelprobe/internal/platform/registry"
	"intelprobe/internal/testutil"
)

func hashTarget(t *testing.T, value string) domain.Target {
	t.Helper()
	target := domain.NewTarget(value, domain.TargetKindHash)
	if err := target.Validate(); err != nil {
		t.Fatalf("fixture target invalid: %v", err)
	}
	return target
}

func TestRunKnownHash(t *testing.T) {
	m := New(logx.New(), nil)
	result := m.Run(context.Background(), hashTarget(t, testutil.FixtureHashes["md5"]))

	testutil.AssertEqual(t, len(result.Facts), 2, "fact count")
	testutil.AssertEqual(t, result.Facts[0], "Hash Length: 32 characters", "length fact first")
	testutil.AssertEqual(t, result.Facts[1], "Most Likely: MD5 or NTLM", "guess fact second")
	testutil.AssertEqual(t, result.Status, domain.RunStatusOK, "status")
	testutil.AssertTrue(t, result.Report == nil, "no report")
}

func TestRunPrefixedHash(t *testing.T) {
	m := New(logx.New(), nil)
	plain := m.Run(context.Background(), hashTarget(t, testutil.FixtureHashes["sha256"]))
	prefixed := m.Run(context.Background(), hashTarget(t, "SHA256:"+testutil.FixtureHashes["sha256"]))

	testutil.AssertEqual(t, len(plain.Facts), len(prefixed.Facts), "same fact count")
	for i := range plain.Facts {
		testutil.AssertEqual(t, prefixed.Facts[i], plain.Facts[i], "prefix does not change classification")
	}
}

func TestRunUnknownLength(t *testing.T) {
	m := New(logx.New(), nil)
	result := m.Run(context.Background(), hashTarget(t, "abcdefg"))

	testutil.AssertEqual(t, len(result.Facts), 2, "fact count")
	testutil.AssertEqual(t, result.Facts[0], "Hash Length: 7 characters", "length fact")
	testutil.AssertEqual(t, result.Facts[1], "Unknown hash type", "unknown fact")
}

func TestRunBcrypt(t *testing.T) {
	m := New(logx.New(), nil)
	result := m.Run(context.Background(), hashTarget(t, testutil.FixtureHashes["bcrypt"]))

	testutil.AssertContains(t, result.Facts, "Hash Length: 60 characters", "length fact")
	testutil.AssertContains(t, result.Facts, "Most Likely: bcrypt", "bcrypt guess")
}

func TestEnvelopeHasNoFiles(t *testing.T) {
	m := New(logx.New(), nil)
	result := m.Run(context.Background(), hashTarget(t, testutil.FixtureHashes["sha1"]))

	envelope := output.BuildEnvelope(m.Prefix(), result, time.Now())
	testutil.AssertEqual(t, len(envelope.Files), 0, "hash module emits no files")
	testutil.AssertEqual(t, len(envelope.Nodes), 2, "facts become nodes")
}

func TestAnalyzeFacts(t *testing.T) {
	facts := analyzeFacts(testutil.FixtureHashes["md5"])
	testutil.AssertEqual(t, len(facts), 2, "fact count")
	testutil.AssertEqual(t, facts[0], "Hash Length: 32 characters", "length fact")
}

func TestRegisteredInGlobalRegistry(t *testing.T) {
	testutil.AssertTrue(t, registry.Global().IsRegistered("hash_detect"), "module registered via init")

	meta, ok := registry.Global().GetMetadata("hash_detect")
	testutil.AssertTrue(t, ok, "metadata present")
	testutil.AssertEqual(t, meta.TargetKind, domain.TargetKindHash, "target kind")
	testutil.AssertFalse(t, meta.EmitsReport, "emits no report file")
}

func TestModuleIdentity(t *testing.T) {
	m := New(logx.New(), nil)
	testutil.AssertEqual(t, m.Name(), "hash_detect", "name")
	testutil.AssertEqual(t, m.Prefix(), "hash_detect", "prefix")
	testutil.AssertEqual(t, m.TargetKind(), domain.TargetKindHash, "target kind")
	testutil.AssertNoError(t, m.Close(), "close")
}
