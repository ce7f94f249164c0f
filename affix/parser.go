package affix

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rivy-t/aspell-affix/editdist"
)

// ParseFile parses an affix rule file from r under DefaultConfig. See
// ParseFileWithConfig for the format and error conditions; this is a
// convenience wrapper for callers that don't need to tune engine-wide
// limits, mirroring coregex.Compile delegating to
// coregex.CompileWithConfig.
func ParseFile(r io.Reader, dataEncoding string) (*Store, error) {
	return ParseFileWithConfig(r, dataEncoding, DefaultConfig())
}

// ParseFileWithConfig parses an affix rule file from r, producing a
// fully wired Store governed by config. dataEncoding is the encoding the
// caller expects the dictionary to use; the file's own SET
// <encoding-name> line must match it exactly, or parsing fails with
// ErrBadFileFormat (spec.md §4.2, §7). config is validated first; an
// invalid config fails fast with a *ConfigError before any byte of r is
// read.
//
// The format is line-oriented and whitespace-delimited, with '#'
// starting a line comment:
//
//	SET <encoding-name>
//	PFX <flag> <Y|N> <count>
//	PFX <flag> <strip|"0"> <append|"0"> <condition-pattern>
//	...
//	SFX <flag> <Y|N> <count>
//	SFX <flag> <strip|"0"> <append|"0"> <condition-pattern>
//	...
//
// Grounded on AffixMgr::parse_file / build_pfxlist / build_sfxlist
// (affix.cpp): SET is checked once against the caller's encoding; each
// PFX/SFX block header names a flag, a cross-product flag, and an entry
// count, followed by exactly that many entry lines, each of which must
// repeat the block's flag byte. After every block has been read,
// Store.wireSubsetLinks computes the subset-traversal links exactly once
// (process_pfx_order / process_sfx_order), mirroring the source doing
// this as a fix-up pass after the whole file has been read rather than
// incrementally per entry.
//
// config.MaxAffixEntries bounds the total number of entries accepted
// across every block; config.MaxStripLen and config.MaxConditions bound
// each entry's strip string and condition pattern respectively, all
// three failing with ErrLimitExceeded when violated.
// config.EnablePrefixAcceleration is forwarded to package editdist's
// common-prefix scan (spec.md §2 item 13); it has no effect on parsing
// itself.
func ParseFileWithConfig(r io.Reader, dataEncoding string, config Config) (*Store, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	editdist.SetAccelerationEnabled(config.EnablePrefixAcceleration)

	store := newStoreWithConfig(config)
	sc := bufio.NewScanner(r)
	lineNo := 0
	sawSet := false

	nextLine := func() (string, bool) {
		for sc.Scan() {
			lineNo++
			line := sc.Text()
			if i := strings.IndexByte(line, '#'); i >= 0 {
				line = line[:i]
			}
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			return line, true
		}
		return "", false
	}

	for {
		line, ok := nextLine()
		if !ok {
			break
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "SET":
			if len(fields) != 2 {
				return nil, corrupt(lineNo, "malformed SET directive")
			}
			if fields[1] != dataEncoding {
				return nil, badFormat(lineNo, fmt.Sprintf("file encoding %q does not match expected %q", fields[1], dataEncoding))
			}
			sawSet = true

		case "PFX", "SFX":
			kind := Prefix
			if fields[0] == "SFX" {
				kind = Suffix
			}
			if err := parseBlock(kind, fields, lineNo, nextLine, store); err != nil {
				return nil, err
			}

		default:
			return nil, badFormat(lineNo, fmt.Sprintf("unrecognized directive %q", fields[0]))
		}
	}

	if err := sc.Err(); err != nil {
		return nil, err
	}
	if !sawSet {
		return nil, badFormat(lineNo, "missing SET directive")
	}

	store.wireSubsetLinks()
	return store, nil
}

// parseBlock reads one PFX/SFX block header (already split into fields)
// plus its count entry lines, inserting each compiled Entry into store.
func parseBlock(kind Kind, header []string, headerLine int, nextLine func() (string, bool), store *Store) error {
	if len(header) != 4 {
		return badFormat(headerLine, fmt.Sprintf("malformed %s block header", kind))
	}
	flag, err := parseFlag(header[1])
	if err != nil {
		return corrupt(headerLine, err.Error())
	}
	cross, err := parseCross(header[2])
	if err != nil {
		return badFormat(headerLine, err.Error())
	}
	count, err := strconv.Atoi(header[3])
	if err != nil || count < 0 {
		return badFormat(headerLine, fmt.Sprintf("invalid entry count %q", header[3]))
	}

	dirName := "PFX"
	if kind == Suffix {
		dirName = "SFX"
	}

	for i := 0; i < count; i++ {
		line, ok := nextLine()
		if !ok {
			return badFormat(headerLine, fmt.Sprintf("unexpected EOF in %s %c block, expected %d entries, got %d", dirName, flag, count, i))
		}
		fields := strings.Fields(line)
		if len(fields) != 5 || fields[0] != dirName {
			return corrupt(headerLine+i+1, fmt.Sprintf("malformed %s entry", dirName))
		}
		entryFlag, err := parseFlag(fields[1])
		if err != nil || entryFlag != flag {
			return corrupt(headerLine+i+1, fmt.Sprintf("Affix '%c' is corrupt", flag))
		}

		if store.entryCount() >= store.config.MaxAffixEntries {
			return limitExceeded(headerLine+i+1, fmt.Sprintf("affix entry count exceeds MaxAffixEntries (%d)", store.config.MaxAffixEntries))
		}

		stripStr := zeroAsEmpty(fields[2])
		if len(stripStr) > store.config.MaxStripLen {
			return limitExceeded(headerLine+i+1, fmt.Sprintf("strip string length %d exceeds MaxStripLen (%d)", len(stripStr), store.config.MaxStripLen))
		}

		strip := store.intern(stripStr)
		appnd := store.intern(zeroAsEmpty(fields[3]))
		cond, err := compileConditionMax(fields[4], store.config.MaxConditions)
		if err != nil {
			if _, hardErr := compileCondition(fields[4]); hardErr == nil {
				return limitExceeded(headerLine+i+1, fmt.Sprintf("condition pattern %q exceeds MaxConditions (%d)", fields[4], store.config.MaxConditions))
			}
			return corrupt(headerLine+i+1, err.Error())
		}

		store.insert(newEntry(kind, flag, strip, appnd, cross, cond))
	}
	return nil
}

func parseFlag(s string) (byte, error) {
	if len(s) != 1 {
		return 0, fmt.Errorf("flag %q must be exactly one byte", s)
	}
	return s[0], nil
}

func parseCross(s string) (bool, error) {
	switch s {
	case "Y":
		return true, nil
	case "N":
		return false, nil
	default:
		return false, fmt.Errorf("cross-product flag %q must be Y or N", s)
	}
}

func zeroAsEmpty(s string) string {
	if s == "0" {
		return ""
	}
	return s
}

func badFormat(line int, msg string) *ParseError {
	return &ParseError{Line: line, Err: fmt.Errorf("%w: %s", ErrBadFileFormat, msg)}
}

func corrupt(line int, msg string) *ParseError {
	return &ParseError{Line: line, Err: fmt.Errorf("%w: %s", ErrCorruptEntry, msg)}
}

func limitExceeded(line int, msg string) *ParseError {
	return &ParseError{Line: line, Err: fmt.Errorf("%w: %s", ErrLimitExceeded, msg)}
}
