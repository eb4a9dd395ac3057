package pdbconv

import (
	"sync"

	"github.com/Jeffail/tunny"
	"github.com/andrew-torda/molstruct/pkg/logging"
	"github.com/sirupsen/logrus"
)

// Result says what happened to one file.
type Result struct {
	In  string
	Out string
	Err error
}

// Batch converts files into outdir, nworkers at a time. Every file is
// tried, whatever happens to the others. Results are in the order of
// files. Two inputs with the same base name write the same output.
func Batch(files []string, outdir string, nworkers int) []Result {
	if nworkers < 1 {
		nworkers = 1
	}
	log := logging.Logger()
	pool := tunny.NewFunc(nworkers, func(payload interface{}) interface{} {
		in := payload.(string)
		out := outName(outdir, in)
		return Result{In: in, Out: out, Err: Convert(in, out)}
	})
	defer pool.Close()

	results := make([]Result, len(files))
	var wg sync.WaitGroup
	for i, f := range files {
		wg.Add(1)
		go func(i int, f string) {
			defer wg.Done()
			results[i] = pool.Process(f).(Result)
		}(i, f)
	}
	wg.Wait()
	for _, r := range results {
		entry := log.WithFields(logrus.Fields{"in": r.In, "out": r.Out})
		if r.Err != nil {
			entry.WithError(r.Err).Error("conversion failed")
		} else {
			entry.Info("converted")
		}
	}
	return results
}

// NFailed counts the results with errors.
func NFailed(results []Result) (n int) {
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return
}
