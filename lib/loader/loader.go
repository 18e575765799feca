package loader

import (
	"io"
	"os"
	"strings"

	"github.com/aquilax/truncate"
	"github.com/dustin/go-humanize"
	"github.com/gertd/go-pluralize"
	"github.com/pkg/errors"

	"github.com/pescuma/doclines/lib/consoles"
	"github.com/pescuma/doclines/lib/document"
	"github.com/pescuma/doclines/lib/sources"
	"github.com/pescuma/doclines/lib/utils"
)

const (
	Header = "Document read from file: \n" +
		"-------------------------\n"
	Footer = "-------------------------\n"

	previewLength = 40
)

type Options struct {
	// Path of the input file.
	Path string

	// ProgressOutput receives a progress bar while the file is read. Nil disables it.
	ProgressOutput io.Writer
}

type Loader struct {
	console consoles.Console
	docOpts []document.Option
	open    func(path string) (fileSource, error)
}

type fileSource interface {
	sources.LineSource
	io.Closer
}

func NewLoader(console consoles.Console, docOpts ...document.Option) *Loader {
	return &Loader{
		console: console,
		docOpts: docOpts,
		open:    openFile,
	}
}

func openFile(path string) (fileSource, error) {
	src, err := sources.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return src, nil
}

// Load reads every line of src into a new document.
func (l *Loader) Load(src sources.LineSource) (*document.Document, error) {
	return l.load(src, nil)
}

func (l *Loader) load(src sources.LineSource, onLine func(document.Line)) (*document.Document, error) {
	doc := document.New(l.docOpts...)

	count := 0
	var size uint64
	for {
		line, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			doc.Destroy()
			return nil, errors.Wrapf(err, "error loading line %v", count+1)
		}

		doc.Append(line)

		count++
		size += uint64(len(line))

		l.console.Printf("line %v: %v\n", count, preview(line))

		if onLine != nil {
			onLine(line)
		}
	}

	pc := pluralize.NewClient()
	l.console.Printf("Loaded %v (%v)\n", pc.Pluralize("line", count, true), humanize.Bytes(size))

	return doc, nil
}

// LoadFile reads the file at path into a new document. No document is created
// if the file can't be opened.
func (l *Loader) LoadFile(path string) (*document.Document, error) {
	return l.loadFile(&Options{Path: path})
}

func (l *Loader) loadFile(opts *Options) (*document.Document, error) {
	src, err := l.open(opts.Path)
	if err != nil {
		return nil, err
	}

	l.console.PushPrefix("%v: ", opts.Path)
	defer l.console.PopPrefix()

	var onLine func(document.Line)
	if opts.ProgressOutput != nil {
		var total int64 = -1
		if stat, err := os.Stat(opts.Path); err == nil {
			total = stat.Size()
		}

		bar := utils.NewProgressBar(total, opts.ProgressOutput)
		defer bar.Finish()

		onLine = func(line document.Line) {
			_ = bar.Add(len(line))
		}
	}

	doc, err := l.load(src, onLine)
	if err != nil {
		_ = src.Close()
		return nil, err
	}

	err = src.Close()
	if err != nil {
		doc.Destroy()
		return nil, err
	}

	return doc, nil
}

// Print writes doc between the header and footer banners.
func (l *Loader) Print(w io.Writer, doc *document.Document) error {
	_, err := io.WriteString(w, Header)
	if err != nil {
		return errors.Wrap(err, "error writing header")
	}

	_, err = doc.WriteTo(w)
	if err != nil {
		return errors.Wrap(err, "error writing document")
	}

	_, err = io.WriteString(w, Footer)
	if err != nil {
		return errors.Wrap(err, "error writing footer")
	}

	return nil
}

// Run loads the file, prints it to w and destroys the document.
func (l *Loader) Run(w io.Writer, opts *Options) error {
	doc, err := l.loadFile(opts)
	if err != nil {
		return err
	}
	defer doc.Destroy()

	return l.Print(w, doc)
}

func preview(line document.Line) string {
	text := strings.TrimRight(string(line), "\r\n")
	return truncate.Truncate(text, previewLength, "...", truncate.PositionEnd)
}
