package intervalfile

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// parseLines reads records in line format and hands them to emit.
func parseLines(r io.Reader, emit func(Record)) error {
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rec, err := parseLine(line)
		if err != nil {
			return errors.Wrapf(err, "line %d", lineno)
		}
		rec.Line = lineno
		emit(rec)
	}
	return errors.Wrap(scanner.Err(), "reading records")
}

func parseLine(line string) (Record, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return Record{}, errors.Errorf("expected start and length, have %q", line)
	}
	start, err := strconv.Atoi(fields[0])
	if err != nil {
		return Record{}, errors.Wrap(err, "invalid start")
	}
	length, err := strconv.Atoi(fields[1])
	if err != nil {
		return Record{}, errors.Wrap(err, "invalid length")
	}
	rec := Record{Start: start, Length: length}
	if len(fields) > 2 {
		rec.Label = strings.Join(fields[2:], " ")
	}
	return rec, validate(rec)
}

// parseYAML reads a YAML sequence of records and hands them to emit.
func parseYAML(r io.Reader, emit func(Record)) error {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if err == io.EOF { // empty document
			return nil
		}
		return errors.Wrap(err, "decoding YAML")
	}
	if len(root.Content) == 0 {
		return nil
	}
	seq := root.Content[0]
	if seq.Kind != yaml.SequenceNode {
		return errors.Errorf("line %d: expected a sequence of records", seq.Line)
	}
	for _, item := range seq.Content {
		var rec Record
		if err := item.Decode(&rec); err != nil {
			return errors.Wrapf(err, "line %d", item.Line)
		}
		rec.Line = item.Line
		if err := validate(rec); err != nil {
			return errors.Wrapf(err, "line %d", item.Line)
		}
		emit(rec)
	}
	return nil
}

func validate(rec Record) error {
	if rec.Length < 0 {
		return errors.Errorf("negative length %d", rec.Length)
	}
	return nil
}
