package awig

import (
	"regexp"
	"slices"
)

var (
	identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_$]*$`)
	pathPattern       = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_$]*(\.[A-Za-z_][A-Za-z0-9_$]*)*$`)
)

// CheckIds fails on the first entry of list reusing the id of an earlier
// entry. The error is an ErrElement wrapping ErrIdDuplicate.
func CheckIds[E Element](list []E) error {
	return checkIds(elements(list))
}

func checkIds(elems []element) error {
	seen := make(map[uint32]bool, len(elems))
	for n, e := range elems {
		if seen[e.Id] {
			return ErrElement{Kind: e.Kind, Index: n, Id: e.Id, Path: e.Path, Err: ErrIdDuplicate}
		}
		seen[e.Id] = true
	}

	return nil
}

func checkElements(elems []element) error {
	for n, e := range elems {
		var err error
		switch {
		case e.Id > MAX_ID:
			err = ErrIdRange
		case e.Width == 0 || e.Width > MAX_WIDTH:
			err = ErrWidthInvalid
		case !pathPattern.MatchString(e.Path):
			err = ErrPathInvalid
		}
		if err != nil {
			return ErrElement{Kind: e.Kind, Index: n, Id: e.Id, Path: e.Path, Err: err}
		}
	}

	return nil
}

// checkNames fails when two sources generate the same function name.
func checkNames(registerPrefix string, memoryPrefix string, elems []element) error {
	owner := map[string]string{}
	claim := func(source string, names ...string) error {
		for _, name := range names {
			first, ok := owner[name]
			if ok {
				return ErrNameCollision{Name: name, First: first, Second: source}
			}
			owner[name] = source
		}
		return nil
	}

	err := claim(f("%v dispatch", KIND_REGISTER), ReadName(registerPrefix), WriteName(registerPrefix))
	if err != nil {
		return err
	}
	err = claim(f("%v dispatch", KIND_MEMORY), ReadName(memoryPrefix), WriteName(memoryPrefix))
	if err != nil {
		return err
	}

	for _, e := range elems {
		err = claim(f("%v '%v'", e.Kind, e.Path), ReadName(e.Path), WriteName(e.Path))
		if err != nil {
			return err
		}
	}

	return nil
}

// Validate checks req before anything is generated.
//
// Ids are checked first, registers then memories, followed by id ranges,
// widths and paths, the request names, and finally the generated function names.
func (req Request) Validate() (err error) {
	regs := elements(req.Registers)
	mems := elements(req.Memories)

	for _, elems := range [][]element{regs, mems} {
		err = checkIds(elems)
		if err != nil {
			return
		}
	}

	for _, elems := range [][]element{regs, mems} {
		err = checkElements(elems)
		if err != nil {
			return
		}
	}

	idents := []struct {
		field   string
		name    string
		pattern *regexp.Regexp
	}{
		{f("top name"), req.TopName, pathPattern},
		{f("module name"), req.ModuleName, identifierPattern},
		{f("register prefix"), req.RegisterPrefix, identifierPattern},
		{f("memory prefix"), req.MemoryPrefix, identifierPattern},
	}
	for _, ident := range idents {
		if !ident.pattern.MatchString(ident.name) {
			return ErrIdentifier{Field: ident.field, Name: ident.name}
		}
	}

	qualified := slices.Concat(qualify(req.TopName, regs), qualify(req.TopName, mems))
	return checkNames(req.RegisterPrefix, req.MemoryPrefix, qualified)
}
