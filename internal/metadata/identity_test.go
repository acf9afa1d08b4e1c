package metadata

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRecordID_PrefersRepositoryID(t *testing.T) {
	id := "MDR_00000002"
	a := &MetaV1{MdrepoID: &id}
	b := &MetaV2{MdrepoID: &id}

	assert.Equal(t, RecordID(a, "one.toml"), RecordID(b, "other.json"))
	assert.Equal(t, uuid.NewSHA1(NamespaceRecordIdentity, []byte("mdrepo:MDR_00000002")), RecordID(a, ""))
	assert.Equal(t, uuid.Version(5), RecordID(a, "").Version())
}

func TestRecordID_FallsBackToPath(t *testing.T) {
	m := &MetaV1{}
	assert.Equal(t, RecordID(m, "./Runs/A.toml"), RecordID(m, "runs/a.toml"))
	assert.NotEqual(t, RecordID(m, "runs/a.toml"), RecordID(m, "runs/b.toml"))
}

func TestRecordID_Deterministic(t *testing.T) {
	m := ExampleV1()
	assert.Equal(t, RecordID(m, "example.toml"), RecordID(m, "example.toml"))
}
