package parser

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mcncl/rdjson/internal/errors"
	"github.com/mcncl/rdjson/internal/models"
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("parser")

// ParseString parses a document held in memory. Parse failures are wrapped
// in a parsing AppError; the *errors.ParseError stays reachable via errors.As.
func ParseString(text string, opts Options) (models.Document, error) {
	root, err := ParseDocumentWithOptions(text, opts)
	if err != nil {
		log.Debugf("parse failed: %v", err)
		return models.Document{}, errors.NewParsingError("failed to parse document", err)
	}
	log.Debugf("parsed document with %d top-level entries", root.Len())
	return models.Document{Root: root}, nil
}

// ParseReader reads everything from reader and parses it
func ParseReader(reader io.Reader, opts Options) (models.Document, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return models.Document{}, errors.NewInputError("failed to read input", err)
	}
	if len(data) == 0 {
		return models.Document{}, errors.NewInputError("empty input received", errors.ErrEmptyInput)
	}
	return ParseString(string(data), opts)
}

// ParseFile parses the document stored at filePath
func ParseFile(filePath string, opts Options) (models.Document, error) {
	if strings.TrimSpace(filePath) == "" {
		return models.Document{}, errors.NewInputError("file path is empty", errors.ErrInvalidFilePath)
	}
	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return models.Document{}, errors.NewInputError(
				fmt.Sprintf("file '%s' not found", filePath),
				errors.ErrFileNotFound,
			)
		}
		return models.Document{}, errors.NewInputError(
			fmt.Sprintf("failed to open file '%s'", filePath),
			err,
		)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.Warningf("error closing %s: %v", filePath, err)
		}
	}()

	stat, err := file.Stat()
	if err != nil {
		return models.Document{}, errors.NewInputError(
			fmt.Sprintf("failed to get file stats for '%s'", filePath),
			err,
		)
	}
	if stat.Size() == 0 {
		return models.Document{}, errors.NewInputError(
			fmt.Sprintf("input file '%s' is empty", filePath),
			errors.ErrFileEmpty,
		)
	}

	log.Debugf("reading %s (%d bytes)", filePath, stat.Size())
	doc, err := ParseReader(file, opts)
	if err != nil {
		return models.Document{}, err
	}
	doc.Source = filePath
	return doc, nil
}
