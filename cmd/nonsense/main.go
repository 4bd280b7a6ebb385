// SPDX-License-Identifier: MIT
// Package: nonsense/cmd/nonsense
//
// main.go - command-line entry point: flags, logging, output format.

// Command nonsense prints placeholder text in the style of a real language.
//
//	nonsense -l es -w 40
//	nonsense --lang en --seed 7 --html > page.html
//	nonsense --data ./languages --list
package main

import (
	"io"
	"io/fs"
	"log"
	"os"
	"time"

	arg "github.com/alexflint/go-arg"

	nonsense "github.com/cjnimes/Nonsense-Text"
	"github.com/cjnimes/Nonsense-Text/corpus"
	"github.com/cjnimes/Nonsense-Text/render"
)

// Config represents the command line of the app.
type Config struct {
	Lang  string `arg:"-l,--lang" help:"language whose tables are used"`
	Words int    `arg:"-w,--words" help:"number of words; 0 picks between 1 and 50"`
	Seed  int64  `arg:"-s,--seed" help:"random seed; 0 seeds from the clock"`
	Count int    `arg:"-n,--count" help:"number of texts to print"`
	HTML  bool   `arg:"--html" help:"wrap the output in an HTML page"`
	Lines bool   `arg:"--lines" help:"print one sentence per line"`
	Data  string `arg:"-d,--data" help:"directory with language tables instead of the built-in ones"`
	List  bool   `arg:"--list" help:"list available languages and exit"`
	Debug bool   `arg:"--debug" help:"enable debug logging"`
}

// Description is shown at the top of --help.
func (Config) Description() string {
	return "nonsense generates phonotactically plausible gibberish.\n"
}

// setup some defaults
var conf = Config{
	Lang:  "es",
	Count: 1,
}

var logger *log.Logger

func debugf(format string, args ...interface{}) {
	if conf.Debug {
		logger.Printf("debug: "+format, args...)
	}
}

func languageFS() fs.FS {
	if conf.Data == "" {
		return corpus.Default()
	}
	return os.DirFS(conf.Data)
}

func newGenerator(fsys fs.FS) (*nonsense.Generator, error) {
	seed := conf.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	debugf("language=%s words=%d seed=%d", conf.Lang, conf.Words, seed)

	return nonsense.New(conf.Lang,
		nonsense.WithFS(fsys),
		nonsense.WithWordCount(conf.Words),
		nonsense.WithSeed(seed),
	)
}

// run writes conf.Count texts to w.
func run(w io.Writer) error {
	fsys := languageFS()

	if conf.List {
		langs, err := nonsense.Languages(fsys)
		if err != nil {
			return err
		}
		for _, l := range langs {
			if err := render.Plain(w, l, false); err != nil {
				return err
			}
		}
		return nil
	}

	g, err := newGenerator(fsys)
	if err != nil {
		return err
	}
	debugf("generator ready: %d words per text", g.WordCount())

	for i := 0; i < conf.Count; i++ {
		text, err := g.Generate()
		if err != nil {
			return err
		}
		if conf.HTML {
			err = render.Document(w, "nonsense ("+g.Language()+")", text)
		} else {
			err = render.Plain(w, text, conf.Lines)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func main() {
	// initialize app flags
	p := arg.MustParse(&conf)
	if conf.Words < 0 {
		p.Fail("--words must not be negative")
	}
	if conf.Count < 1 {
		p.Fail("--count must be at least 1")
	}

	// initialize logger
	logger = log.New(os.Stderr, "", log.Lshortfile|log.LstdFlags)
	debugf("initializing logger")

	if err := run(os.Stdout); err != nil {
		logger.Fatal("error: ", err)
	}
}
