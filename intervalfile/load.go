package intervalfile

import (
	"io"
	"os"
	"sync"

	"github.com/guiguan/caster"
	"github.com/npillmayer/intervals"
	"github.com/pkg/errors"
)

// Tree is an interval tree of records.
type Tree = intervals.Tree[Record, Positions]

// Option configures loading of records.
type Option func(*loader)

// WithSubscriber registers a function which will be called for every record
// read, in file order. fn is called from a separate goroutine; loading
// returns only after fn has seen all records.
func WithSubscriber(fn func(Record)) Option {
	return func(l *loader) {
		if fn != nil {
			l.subscribers = append(l.subscribers, fn)
		}
	}
}

type loader struct {
	subscribers []func(Record)
}

// endOfRecords is broadcast after the last record. err is the error which
// stopped parsing, if any.
type endOfRecords struct {
	err error
}

// queueSize is the buffer capacity of each subscription.
const queueSize = 64

// Load reads a file of interval records into a tree. The format is selected
// from the file's extension, see FormatFromName.
func Load(name string, opts ...Option) (*Tree, error) {
	file, err := openFile(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	tree, err := Read(file, FormatFromName(name), opts...)
	if err != nil {
		tracer().Errorf("intervalfile: %s: %v", name, err)
		return nil, errors.Wrapf(err, "loading %s", name)
	}
	tracer().Infof("intervalfile: loaded %d records from %s", tree.Len(), name)
	return tree, nil
}

// openFile opens an OS file, checking for error conditions.
func openFile(name string) (*os.File, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, errors.Wrap(err, "intervalfile")
	} else if !fi.Mode().IsRegular() {
		return nil, errors.Errorf("intervalfile: %s is not a regular file", name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, errors.Wrap(err, "intervalfile")
	}
	return file, nil
}

// Read parses records from r and inserts them into a new tree, in input
// order. If parsing fails, no tree is returned; subscribers may have seen
// the records preceding the error.
func Read(r io.Reader, format Format, opts ...Option) (*Tree, error) {
	l := &loader{}
	for _, opt := range opts {
		opt(l)
	}
	cast := caster.New(nil) // we will broadcast records as they are parsed
	defer cast.Close()
	//
	records, ok := cast.Sub(nil, queueSize)
	if !ok {
		return nil, errors.New("intervalfile: cannot subscribe to records")
	}
	var wg sync.WaitGroup
	for _, fn := range l.subscribers {
		sub, ok := cast.Sub(nil, queueSize)
		if !ok {
			return nil, errors.New("intervalfile: cannot subscribe to records")
		}
		wg.Add(1)
		go func(ch <-chan interface{}, fn func(Record)) {
			defer wg.Done()
			for m := range ch {
				switch msg := m.(type) {
				case Record:
					fn(msg)
				case endOfRecords:
					return
				}
			}
		}(sub, fn)
	}
	//
	go func() {
		parse := parseLines
		if format == YAMLFormat {
			parse = parseYAML
		}
		err := parse(r, func(rec Record) {
			cast.Pub(rec)
		})
		cast.Pub(endOfRecords{err: err})
	}()
	//
	tree := intervals.Empty[Record, Positions]()
	var err error
	for m := range records {
		if end, isEnd := m.(endOfRecords); isEnd {
			err = end.err
			break
		}
		tree.Insert(m.(Record))
	}
	wg.Wait()
	if err != nil {
		return nil, err
	}
	return tree, nil
}
