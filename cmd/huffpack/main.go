// Command huffpack compresses and decompresses files with the huffpack
// stream format.
//
//     huffpack file...          compress each file to file.hpk
//     huffpack -d file.hpk...   decompress each file.hpk back to file
//
// Independent files are processed concurrently; one failure stops the
// whole batch.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/chronos-tachyon/huffpack"
)

const suffix = ".hpk"

func main() {
	decodeFlag := flag.Bool("d", false, "decompress instead of compress")
	outFlag := flag.String("o", "", "output path (single input only)")
	verboseFlag := flag.Bool("v", false, "dump the frequency and code tables to stderr")
	flag.Parse()

	inputs := flag.Args()
	if len(inputs) == 0 {
		fmt.Fprintln(os.Stderr, "huffpack: no input files")
		flag.Usage()
		os.Exit(2)
	}
	if *outFlag != "" && len(inputs) != 1 {
		fmt.Fprintln(os.Stderr, "huffpack: -o requires exactly one input file")
		os.Exit(2)
	}

	if err := run(inputs, *decodeFlag, *outFlag, *verboseFlag); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(inputs []string, decode bool, out string, verbose bool) error {
	jobs := make(chan string, len(inputs))
	for _, path := range inputs {
		jobs <- path
	}
	close(jobs)

	numWorkers := runtime.NumCPU()
	if numWorkers > len(inputs) {
		numWorkers = len(inputs)
	}

	p := message.NewPrinter(language.English) // for commas between thousands
	var mut sync.Mutex

	g, ctx := errgroup.WithContext(context.Background())
	for w := 0; w < numWorkers; w++ {
		g.Go(func() error {
			for path := range jobs {
				// Stop early if another worker already failed.
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}

				if err := processFile(p, &mut, path, decode, out, verbose); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}

func processFile(p *message.Printer, mut *sync.Mutex, path string, decode bool, out string, verbose bool) error {
	dstPath := out
	var stats huffpack.Stats
	var err error
	if decode {
		if dstPath == "" {
			if !strings.HasSuffix(path, suffix) {
				return fmt.Errorf("%s: missing %s suffix, use -o to name the output", path, suffix)
			}
			dstPath = strings.TrimSuffix(path, suffix)
		}
		stats, err = huffpack.DecodeFile(dstPath, path)
	} else {
		if dstPath == "" {
			dstPath = path + suffix
		}
		stats, err = huffpack.EncodeFile(dstPath, path)
	}
	if err != nil {
		return err
	}

	mut.Lock()
	defer mut.Unlock()

	var ratio float64
	if stats.BytesIn > 0 {
		ratio = float64(stats.BytesOut) / float64(stats.BytesIn) * 100
	}
	p.Printf("%s: %d bytes in, %d bytes out (%.1f%%) -> %s\n",
		path, stats.BytesIn, stats.BytesOut, ratio, dstPath)

	if verbose {
		plain := path
		if decode {
			plain = dstPath
		}
		return dumpTables(plain, decode)
	}
	return nil
}

// dumpTables rebuilds the frequency and code tables from the plain file
// and dumps them to stderr.  The table counted from the decoded output is
// identical to the one carried in the stream header, so this works for
// both directions.
func dumpTables(path string, decode bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	ft, err := huffpack.CountFrequencies(f)
	if err != nil {
		return err
	}
	if _, err := ft.Dump(os.Stderr); err != nil {
		return err
	}

	if decode {
		var dec huffpack.Decoder
		if err := dec.Init(ft); err != nil {
			return err
		}
		_, err = dec.Dump(os.Stderr)
		return err
	}

	var enc huffpack.Encoder
	enc.Init(ft)
	_, err = enc.Dump(os.Stderr)
	return err
}
