package datapackage

import (
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"regexp"
	"strings"
	"time"

	fdp "github.com/frictionlessdata/datapackage-go/datapackage"
	"github.com/frictionlessdata/datapackage-go/validator"
	"github.com/google/uuid"

	"github.com/mdrepo/mdrmeta/internal/metadata"
)

// Resource roles recorded under RoleProperty.
const (
	RoleTrajectory = "trajectory"
	RoleStructure  = "structure"
	RoleTopology   = "topology"
	RoleAdditional = "additional"

	RoleProperty     = "mdrepo_role"
	FileTypeProperty = "mdrepo_file_type"
)

// ErrNoFiles is returned for records that name no files at all.
var ErrNoFiles = errors.New("record lists no files")

type fileEntry struct {
	role        string
	fileType    string
	name        string
	description *string
}

type packageInfo struct {
	title        *string
	description  *string
	date         metadata.Datelike
	software     metadata.Software
	files        []fileEntry
	contributors []metadata.Contributor
}

// Build returns the data package describing rec. id becomes the package id.
func Build(rec metadata.Record, id uuid.UUID) (*fdp.Package, error) {
	info, err := describe(rec)
	if err != nil {
		return nil, err
	}
	if len(info.files) == 0 {
		return nil, ErrNoFiles
	}

	name := slug(rec.Identifier())
	if name == "" {
		name = "mdrepo-" + id.String()
	}

	descriptor := map[string]any{
		"name":      name,
		"id":        id.String(),
		"profile":   "data-package",
		"resources": resources(info.files),
		"keywords":  keywords(info.software),
	}
	if info.title != nil && *info.title != "" {
		descriptor["title"] = *info.title
	}
	if info.description != nil && *info.description != "" {
		descriptor["description"] = *info.description
	}
	if created, ok := created(info.date); ok {
		descriptor["created"] = created
	}
	if len(info.contributors) > 0 {
		descriptor["contributors"] = contributors(info.contributors)
	}

	pkg, err := fdp.New(descriptor, ".", validator.InMemoryLoader())
	if err != nil {
		return nil, fmt.Errorf("invalid data package descriptor: %w", err)
	}
	return pkg, nil
}

// Marshal renders the package descriptor as indented JSON.
func Marshal(pkg *fdp.Package) ([]byte, error) {
	data, err := json.MarshalIndent(pkg.Descriptor(), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func describe(rec metadata.Record) (packageInfo, error) {
	switch m := rec.(type) {
	case *metadata.MetaLegacy:
		info := packageInfo{
			title:        m.Initial.ShortDescription,
			description:  m.Initial.Description,
			date:         m.Initial.Date,
			software:     m.Software,
			files:        requiredEntries(m.RequiredFiles),
			contributors: m.Contributors,
		}
		for _, f := range m.AdditionalFiles {
			info.files = append(info.files, fileEntry{role: RoleAdditional, fileType: f.AdditionalFileType, name: f.AdditionalFileName})
		}
		return info, nil
	case *metadata.MetaV1:
		info := packageInfo{
			title:        m.Initial.ShortDescription,
			description:  m.Initial.Description,
			date:         m.Initial.Date,
			software:     m.Software,
			files:        requiredEntries(m.RequiredFiles),
			contributors: m.Contributors,
		}
		for _, f := range m.AdditionalFiles {
			info.files = append(info.files, fileEntry{
				role:        RoleAdditional,
				fileType:    f.AdditionalFileType,
				name:        f.AdditionalFileName,
				description: f.AdditionalFileDescription,
			})
		}
		return info, nil
	case *metadata.MetaV2:
		required := m.RequiredFile
		info := packageInfo{
			title:        m.ShortDescription,
			description:  m.Description,
			date:         m.Date,
			software:     m.Software,
			files:        requiredEntries(&required),
			contributors: m.Contributors,
		}
		for _, f := range m.AdditionalFiles {
			info.files = append(info.files, fileEntry{
				role:        RoleAdditional,
				fileType:    f.FileType,
				name:        f.FileName,
				description: f.Description,
			})
		}
		return info, nil
	default:
		return packageInfo{}, fmt.Errorf("unsupported record type %T", rec)
	}
}

func requiredEntries(r *metadata.RequiredFiles) []fileEntry {
	if r == nil {
		return nil
	}
	var out []fileEntry
	for _, e := range []fileEntry{
		{role: RoleTrajectory, name: r.TrajectoryFileName},
		{role: RoleStructure, name: r.StructureFileName},
		{role: RoleTopology, name: r.TopologyFileName},
	} {
		if e.name != "" {
			out = append(out, e)
		}
	}
	return out
}

func resources(files []fileEntry) []any {
	used := make(map[string]int)
	out := make([]any, 0, len(files))
	for _, f := range files {
		name := slug(f.name)
		if name == "" {
			name = f.role
		}
		used[name]++
		if n := used[name]; n > 1 {
			name = fmt.Sprintf("%s-%d", name, n)
		}

		res := map[string]any{
			"name":       name,
			"path":       f.name,
			RoleProperty: f.role,
		}
		if ext := strings.TrimPrefix(path.Ext(f.name), "."); ext != "" {
			res["format"] = strings.ToLower(ext)
		}
		if f.fileType != "" {
			res[FileTypeProperty] = f.fileType
		}
		if f.description != nil && *f.description != "" {
			res["description"] = *f.description
		}
		out = append(out, res)
	}
	return out
}

func contributors(cs []metadata.Contributor) []any {
	out := make([]any, 0, len(cs))
	for _, c := range cs {
		entry := map[string]any{
			"title": c.Name,
			"role":  "author",
		}
		if c.Email != nil && *c.Email != "" {
			entry["email"] = *c.Email
		}
		if c.Institution != nil && *c.Institution != "" {
			entry["organization"] = *c.Institution
		}
		if c.ORCID != nil && metadata.IsValidORCID(*c.ORCID) {
			entry["path"] = "https://orcid.org/" + *c.ORCID
		}
		out = append(out, entry)
	}
	return out
}

func keywords(sw metadata.Software) []any {
	out := []any{"mdrepo", "molecular-dynamics"}
	if s := slug(sw.Name); s != "" {
		out = append(out, s)
	}
	return out
}

// created returns midnight UTC of a canonical date.
func created(d metadata.Datelike) (string, bool) {
	t, err := time.Parse(metadata.CanonicalDateLayout, d.String())
	if err != nil {
		return "", false
	}
	return t.UTC().Format(time.RFC3339), true
}

var slugInvalid = regexp.MustCompile(`[^a-z0-9._-]+`)

// slug lowers s and replaces runs of characters outside the Frictionless
// name alphabet with a single hyphen.
func slug(s string) string {
	s = slugInvalid.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), "-")
	return strings.Trim(s, "-.")
}
