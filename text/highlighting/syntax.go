// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package highlighting

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/codetext/base/errors"
	"github.com/jinzhu/copier"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// GroupSpec is the configuration of one color group.
// Colors are "R,G,B" decimal triples.
type GroupSpec struct {
	Name           string `json:"name" toml:"name" yaml:"name"`
	Foreground     string `json:"foreground,omitempty" toml:"foreground,omitempty" yaml:"foreground,omitempty"`
	Background     string `json:"background,omitempty" toml:"background,omitempty" yaml:"background,omitempty"`
	AutoForeground bool   `json:"autoForeground,omitempty" toml:"autoForeground,omitempty" yaml:"autoForeground,omitempty"`
	AutoBackground bool   `json:"autoBackground,omitempty" toml:"autoBackground,omitempty" yaml:"autoBackground,omitempty"`
	Emphasis       string `json:"emphasis,omitempty" toml:"emphasis,omitempty" yaml:"emphasis,omitempty"`
}

// KeywordSpec is the configuration of a list of keywords in one color group.
type KeywordSpec struct {
	Group string   `json:"group" toml:"group" yaml:"group"`
	Words []string `json:"words" toml:"words" yaml:"words"`
}

// TagSpec is the configuration of one block tag. See [Tag].
type TagSpec struct {
	Start    string `json:"start" toml:"start" yaml:"start"`
	End      string `json:"end,omitempty" toml:"end,omitempty" yaml:"end,omitempty"`
	Group    string `json:"group" toml:"group" yaml:"group"`
	Index    int    `json:"index" toml:"index" yaml:"index"`
	Advanced bool   `json:"advanced,omitempty" toml:"advanced,omitempty" yaml:"advanced,omitempty"`
}

// Syntax is the configuration of the lexical coloring for one kind of
// text, as loaded from a TOML, YAML or JSON file. Use
// [Syntax.Highlighter] to turn it into a validated [Highlighter].
type Syntax struct {

	// Name of the syntax.
	Name string `json:"name" toml:"name" yaml:"name"`

	// Chroma is the optional name of a chroma style to seed the
	// color groups from; see [AddChromaStyle].
	Chroma string `json:"chroma,omitempty" toml:"chroma,omitempty" yaml:"chroma,omitempty"`

	// Separators that break words in addition to white space.
	// If empty, [DefaultSeparators] is used.
	Separators string `json:"separators,omitempty" toml:"separators,omitempty" yaml:"separators,omitempty"`

	// Groups are the color groups, registered in order after any chroma groups.
	Groups []GroupSpec `json:"groups" toml:"groups" yaml:"groups"`

	// Keywords are the keyword lists.
	Keywords []KeywordSpec `json:"keywords" toml:"keywords" yaml:"keywords"`

	// Tags are the block tags.
	Tags []TagSpec `json:"tags" toml:"tags" yaml:"tags"`
}

//go:embed default.toml
var defaultSyntax []byte

// DefaultSyntax returns the built-in syntax for C-family languages.
func DefaultSyntax() *Syntax {
	sy := &Syntax{}
	errors.Must(toml.Unmarshal(defaultSyntax, sy))
	return sy
}

// ColorGroup returns the [ColorGroup] for this spec.
// Malformed colors return [ErrInvalidColorFormat]; an empty color is
// only allowed when the corresponding auto flag is set.
func (gs *GroupSpec) ColorGroup() (ColorGroup, error) {
	cg := ColorGroup{Name: gs.Name, AutoForeground: gs.AutoForeground, AutoBackground: gs.AutoBackground}
	if gs.Name == "" {
		return cg, fmt.Errorf("%w: color group name is empty", ErrInvalidName)
	}
	var err error
	if gs.Foreground != "" || !gs.AutoForeground {
		if cg.Foreground, err = ParseColor(gs.Foreground); err != nil {
			return cg, fmt.Errorf("group %q foreground: %w", gs.Name, err)
		}
	}
	if gs.Background != "" || !gs.AutoBackground {
		if cg.Background, err = ParseColor(gs.Background); err != nil {
			return cg, fmt.Errorf("group %q background: %w", gs.Name, err)
		}
	}
	if err = cg.Emphasis.SetString(gs.Emphasis); err != nil {
		return cg, fmt.Errorf("group %q: %w", gs.Name, err)
	}
	return cg, nil
}

// Highlighter validates the syntax and returns a new [Highlighter] for it.
// Configuration errors abort the load and are returned: they never
// reach the editing path.
func (sy *Syntax) Highlighter() (*Highlighter, error) {
	rg := NewRegistry()
	if sy.Chroma != "" {
		if err := AddChromaStyle(rg, sy.Chroma); err != nil {
			return nil, fmt.Errorf("syntax %q: %w", sy.Name, err)
		}
	}
	seen := make(map[string]bool, len(sy.Groups))
	for i := range sy.Groups {
		gs := &sy.Groups[i]
		cg, err := gs.ColorGroup()
		if err != nil {
			return nil, fmt.Errorf("syntax %q: %w", sy.Name, err)
		}
		if seen[cg.Name] {
			return nil, fmt.Errorf("syntax %q: %w: color group %q is defined more than once", sy.Name, ErrDuplicateName, cg.Name)
		}
		seen[cg.Name] = true
		rg.Replace(cg)
	}
	hi := NewHighlighter(rg)
	if sy.Separators != "" {
		hi.Separators = sy.Separators
	}
	for _, ks := range sy.Keywords {
		if err := hi.Keywords.AddWords(ks.Group, ks.Words...); err != nil {
			return nil, fmt.Errorf("syntax %q: %w", sy.Name, err)
		}
	}
	defs := make([]Tag, len(sy.Tags))
	for i, ts := range sy.Tags {
		defs[i] = Tag{Start: ts.Start, End: ts.End, Group: ts.Group, Index: ts.Index, Advanced: ts.Advanced}
	}
	tags, err := NewTags(rg, defs...)
	if err != nil {
		return nil, fmt.Errorf("syntax %q: %w", sy.Name, err)
	}
	hi.Tags = tags
	return hi, nil
}

// Clone returns a deep copy of the syntax.
func (sy *Syntax) Clone() *Syntax {
	cp := &Syntax{}
	errors.Log(copier.CopyWithOption(cp, sy, copier.Option{DeepCopy: true}))
	return cp
}

// Merge returns a copy of this syntax with the given syntax laid over it:
// non-empty names, chroma style and separators replace ours, groups
// replace ours with the same name, tags replace ours with the same index,
// and other groups, tags and all keywords are appended.
func (sy *Syntax) Merge(over *Syntax) *Syntax {
	out := sy.Clone()
	ov := over.Clone()
	if ov.Name != "" {
		out.Name = ov.Name
	}
	if ov.Chroma != "" {
		out.Chroma = ov.Chroma
	}
	if ov.Separators != "" {
		out.Separators = ov.Separators
	}
	for _, gs := range ov.Groups {
		found := false
		for i := range out.Groups {
			if out.Groups[i].Name == gs.Name {
				out.Groups[i] = gs
				found = true
				break
			}
		}
		if !found {
			out.Groups = append(out.Groups, gs)
		}
	}
	out.Keywords = append(out.Keywords, ov.Keywords...)
	for _, ts := range ov.Tags {
		found := false
		for i := range out.Tags {
			if out.Tags[i].Index == ts.Index {
				out.Tags[i] = ts
				found = true
				break
			}
		}
		if !found {
			out.Tags = append(out.Tags, ts)
		}
	}
	return out
}

// syntaxFormat returns the format of the given file from its extension.
func syntaxFormat(filename string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		return "toml", nil
	case ".yaml", ".yml":
		return "yaml", nil
	case ".json":
		return "json", nil
	default:
		return "", fmt.Errorf("highlighting: unsupported syntax file extension %q", ext)
	}
}

// OpenSyntax opens a [Syntax] from the given file, in TOML, YAML
// or JSON format according to its extension. A leading ~ in the
// filename is expanded to the home directory.
func OpenSyntax(filename string) (*Syntax, error) {
	fn, err := homedir.Expand(filename)
	if err != nil {
		return nil, err
	}
	format, err := syntaxFormat(fn)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(fn)
	if err != nil {
		return nil, err
	}
	sy := &Syntax{}
	switch format {
	case "toml":
		err = toml.Unmarshal(b, sy)
	case "yaml":
		err = yaml.Unmarshal(b, sy)
	case "json":
		err = json.Unmarshal(b, sy)
	}
	if err != nil {
		return nil, fmt.Errorf("highlighting: %s: %w", filename, err)
	}
	return sy, nil
}

// OpenSyntaxFiles opens the given syntax files and merges them in order,
// so that later files override earlier ones.
func OpenSyntaxFiles(filenames ...string) (*Syntax, error) {
	if len(filenames) == 0 {
		return nil, fmt.Errorf("highlighting: no syntax files given")
	}
	sy, err := OpenSyntax(filenames[0])
	if err != nil {
		return nil, err
	}
	for _, fn := range filenames[1:] {
		over, err := OpenSyntax(fn)
		if err != nil {
			return nil, err
		}
		sy = sy.Merge(over)
	}
	return sy, nil
}

// Save saves the syntax to the given file, in TOML, YAML or JSON
// format according to its extension.
func (sy *Syntax) Save(filename string) error {
	fn, err := homedir.Expand(filename)
	if err != nil {
		return err
	}
	format, err := syntaxFormat(fn)
	if err != nil {
		return err
	}
	var b []byte
	switch format {
	case "toml":
		b, err = toml.Marshal(sy)
	case "yaml":
		b, err = yaml.Marshal(sy)
	case "json":
		b, err = json.MarshalIndent(sy, "", "  ")
	}
	if err != nil {
		return err
	}
	return os.WriteFile(fn, b, 0644)
}
