package cmdplete

import (
	"bufio"
	"os"
	"path/filepath"

	"github.com/egdaemon/wordenum/internal/debugx"
	"github.com/egdaemon/wordenum/internal/fsx"
	"github.com/posener/complete"
)

// WordLists predicts files in the directory being completed whose first line
// is an element count.
type WordLists struct{}

func (t WordLists) Predict(args complete.Args) (results []string) {
	dir := filepath.Dir(args.Last)
	if !fsx.DirExists(dir) {
		return nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		debugx.Println("unable to predict word lists", err)
		return nil
	}

	for _, e := range entries {
		path := filepath.Join(dir, e.Name())
		if dir == "." {
			path = e.Name()
		}

		if e.IsDir() || !counted(path) {
			continue
		}

		results = append(results, path)
	}

	return results
}

func counted(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	s := bufio.NewScanner(f)
	if !s.Scan() || len(s.Bytes()) == 0 {
		return false
	}

	for _, c := range s.Bytes() {
		if c < '0' || c > '9' {
			return false
		}
	}

	return true
}
