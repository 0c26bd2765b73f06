package lumps

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/edge-classic/EDGE-classic-sub008/internal/errors"
	"github.com/edge-classic/EDGE-classic-sub008/internal/output"
)

const (
	manifestName = "run.toml"
	lumpExt      = ".txt"
	filePerm     = 0o644
	dirPerm      = 0o755
)

// manifest is written next to the lump files.
type manifest struct {
	ID        string            `toml:"id"`
	CreatedAt time.Time         `toml:"created_at"`
	Digests   map[string]string `toml:"digests"`
}

// DirConfig holds the configuration for the directory repository
type DirConfig struct {
	// Root is the directory each run gets a subdirectory of.
	Root string
}

// Validate ensures all required settings are provided
func (c *DirConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Root", c.Root, vb)
	return vb.Build()
}

type dirRepository struct {
	root string
}

// NewDir creates a repository that writes <root>/<run id>/<LUMP>.txt.
func NewDir(cfg *DirConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &dirRepository{root: cfg.Root}, nil
}

var _ Repository = (*dirRepository)(nil)

func (d *dirRepository) Save(_ context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errRunNil)
	}
	if err := validateRun(input.Run); err != nil {
		return nil, err
	}
	run := input.Run

	dir := filepath.Join(d.root, run.ID)
	if err := os.RemoveAll(dir); err != nil {
		return nil, errors.Wrapf(err, "failed to clear run directory %s", dir)
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, errors.Wrapf(err, "failed to create run directory %s", dir)
	}

	m := manifest{
		ID:        run.ID,
		CreatedAt: run.CreatedAt.UTC(),
		Digests:   make(map[string]string, len(run.Lumps)),
	}
	for _, l := range run.Lumps {
		path := filepath.Join(dir, l.Name+lumpExt)
		if err := os.WriteFile(path, []byte(l.Text), filePerm); err != nil {
			return nil, errors.Wrapf(err, "failed to write lump %s", path)
		}
		m.Digests[l.Name] = strconv.FormatUint(Digest(l.Text), 16)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(m); err != nil {
		return nil, errors.Wrap(err, "failed to encode run manifest")
	}
	if err := os.WriteFile(filepath.Join(dir, manifestName), buf.Bytes(), filePerm); err != nil {
		return nil, errors.Wrap(err, "failed to write run manifest")
	}

	return &SaveOutput{Location: dir}, nil
}

func (d *dirRepository) Load(_ context.Context, input *LoadInput) (*LoadOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument(errRunIDEmpty)
	}

	dir := filepath.Join(d.root, input.ID)
	var m manifest
	if _, err := toml.DecodeFile(filepath.Join(dir, manifestName), &m); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("run %s not found", input.ID).WithMeta("run_id", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to read manifest of run %s", input.ID)
	}

	var lumps []output.Lump
	for _, kind := range output.AllKinds {
		stored, ok := m.Digests[kind.Name()]
		if !ok {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, kind.Name()+lumpExt))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read lump %s", kind.Name()).WithMeta("run_id", input.ID)
		}
		if err := checkDigest(kind.Name(), string(data), stored); err != nil {
			return nil, err.WithMeta("run_id", input.ID)
		}
		lumps = append(lumps, output.Lump{Kind: kind, Name: kind.Name(), Text: string(data)})
	}

	return &LoadOutput{Run: NewRun(m.ID, m.CreatedAt, lumps)}, nil
}
