package gen

import (
	"embed"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

//go:embed stubs
var stubFS embed.FS

// Supported UI frameworks.
const (
	FrameworkBootstrap = "bootstrap"
	FrameworkTailwind  = "tailwind"
)

// Frameworks lists the built-in stub sets.
var Frameworks = []string{FrameworkBootstrap, FrameworkTailwind}

// A Store resolves stub names to stub contents for one framework.
// Stubs ship embedded in the binary; a custom stub directory can
// shadow them file by file.
type Store struct {
	framework string
	dir       string
}

// NewStore returns the stub store for a built-in framework.
func NewStore(framework string) (*Store, error) {
	for _, f := range Frameworks {
		if f == framework {
			return &Store{framework: framework}, nil
		}
	}
	return nil, fmt.Errorf("gen: %w: %q", ErrUnknownFramework, framework)
}

// WithDir sets a directory whose stub files shadow the embedded set.
// Missing files fall back to the embedded stubs, so a custom set only
// needs to carry the stubs it changes.
func (s *Store) WithDir(dir string) *Store {
	s.dir = dir
	return s
}

// Framework returns the framework this store serves.
func (s *Store) Framework() string {
	return s.framework
}

// Dir returns the custom stub directory, if any.
func (s *Store) Dir() string {
	return s.dir
}

// Load returns the contents of the named stub, e.g. "crud/index.stub".
func (s *Store) Load(name string) (string, error) {
	if s.dir != "" {
		data, err := os.ReadFile(filepath.Join(s.dir, filepath.FromSlash(name)))
		if err == nil {
			return string(data), nil
		}
		if !os.IsNotExist(err) {
			return "", NewStubError(s.framework, name, "read custom stub", err)
		}
	}
	data, err := stubFS.ReadFile(path.Join("stubs", s.framework, name))
	if err != nil {
		return "", NewStubError(s.framework, name, "no such stub", err)
	}
	return string(data), nil
}

// Render substitutes {{name}} placeholders in a stub with the given
// variables. Both the spaced and unspaced placeholder forms are
// accepted. Unknown placeholders are left untouched so Blade's own
// {{ $expr }} echoes survive rendering.
func Render(stub string, vars map[string]string) string {
	pairs := make([]string, 0, len(vars)*4)
	for k, v := range vars {
		pairs = append(pairs,
			"{{"+k+"}}", v,
			"{{ "+k+" }}", v,
		)
	}
	return strings.NewReplacer(pairs...).Replace(stub)
}
