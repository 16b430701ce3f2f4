package gamespec

import (
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"

	"github.com/posetal/posetal/game"
)

// Load reads every .cue file in dir, evaluates them as one instance, and
// compiles the top-level game struct into a validated *game.Game.
func Load(dir string) (*game.Game, error) {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil, &SpecError{Code: CodeNotFound, Message: fmt.Sprintf("definition directory not found: %s", dir)}
	}
	if err != nil {
		return nil, &SpecError{Code: CodeNotFound, Message: fmt.Sprintf("accessing definition directory: %v", err)}
	}
	if !info.IsDir() {
		return nil, &SpecError{Code: CodeNotFound, Message: fmt.Sprintf("not a directory: %s", dir)}
	}

	files, err := findCUEFiles(dir)
	if err != nil {
		return nil, &SpecError{Code: CodeLoadFailed, Message: fmt.Sprintf("scanning directory: %v", err)}
	}
	if len(files) == 0 {
		return nil, &SpecError{Code: CodeNoFiles, Message: fmt.Sprintf("no CUE files found in %s", dir)}
	}

	ctx := cuecontext.New()
	instances := load.Instances([]string{"."}, &load.Config{Dir: dir})
	if len(instances) == 0 {
		return nil, &SpecError{Code: CodeLoadFailed, Message: "no CUE instances loaded"}
	}
	inst := instances[0]
	if inst.Err != nil {
		return nil, &SpecError{Code: CodeLoadFailed, Message: fmt.Sprintf("loading CUE files: %v", inst.Err)}
	}

	value := ctx.BuildInstance(inst)
	if err := value.Err(); err != nil {
		return nil, &SpecError{Code: CodeBuildFailed, Message: fmt.Sprintf("evaluating CUE: %v", err)}
	}

	gameVal := value.LookupPath(cue.ParsePath("game"))
	if !gameVal.Exists() {
		return nil, &SpecError{Code: CodeMissingGame, Message: "no top-level game struct"}
	}
	return compileGame(gameVal)
}

// findCUEFiles walks the directory and returns all .cue file paths.
func findCUEFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == ".cue" {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}
