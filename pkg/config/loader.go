package config

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/yurykabanov/rotator/pkg/domain"
)

// DefaultExtensions are the file extensions considered rule files when
// scanning a config directory.
var DefaultExtensions = []string{".yaml", ".yml"}

// Loader reads rotation rules from a rule file or a directory of rule files.
// Invalid files are skipped and logged so one broken rule never blocks the
// others; the core only ever receives valid rules.
type Loader struct {
	logger     logrus.FieldLogger
	extensions []string
}

func NewLoader(logger logrus.FieldLogger, extensions []string) *Loader {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}

	return &Loader{
		logger:     logger,
		extensions: extensions,
	}
}

// ruleFile is the strict YAML schema of a single rule file. Pointer fields
// distinguish a missing key from a zero value.
type ruleFile struct {
	DryRun        *bool     `yaml:"dry-run"`
	TargetType    *string   `yaml:"target-type"`
	DateDetection *string   `yaml:"date-detection"`
	MaximumItems  *int      `yaml:"maximum-items"`
	MinimumItems  *int      `yaml:"minimum-items"`
	MaximumAge    *int      `yaml:"maximum-age"`
	Paths         *[]string `yaml:"paths"`
}

// Load reads every rule reachable from path, which may be a single rule file
// or a directory scanned recursively. Having no valid rule at all is an
// error and should abort the process.
func (l *Loader) Load(path string) ([]domain.Rule, error) {
	files, err := l.gather(path)
	if err != nil {
		return nil, err
	}

	var rules []domain.Rule

	for _, file := range files {
		rule, err := l.loadFile(file)
		if err != nil {
			l.logger.WithError(err).WithField("rule", file).Error("Skipping invalid rule file")
			continue
		}

		l.logger.WithField("rule", file).WithField("paths", len(rule.Paths)).Info("Loaded rule")

		rules = append(rules, rule)
	}

	if len(rules) == 0 {
		return nil, errors.Errorf("no valid rules found in %s", path)
	}

	return rules, nil
}

func (l *Loader) gather(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to inspect config path")
	}

	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string

	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		if !l.hasRuleExtension(p) {
			l.logger.WithField("rule", p).Debug("Ignoring non-config file")
			return nil
		}

		files = append(files, p)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "unable to scan config directory")
	}

	return files, nil
}

func (l *Loader) hasRuleExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))

	for _, valid := range l.extensions {
		if ext == valid {
			return true
		}
	}

	return false
}

func (l *Loader) loadFile(path string) (domain.Rule, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.Rule{}, errors.Wrap(err, "unable to open rule file")
	}
	defer f.Close()

	var raw ruleFile

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	if err := dec.Decode(&raw); err != nil {
		if err == io.EOF {
			return domain.Rule{}, errors.New("rule file is empty")
		}

		return domain.Rule{}, errors.Wrap(err, "unable to parse rule file")
	}

	return validate(path, raw)
}

func validate(path string, raw ruleFile) (domain.Rule, error) {
	rule := domain.Rule{Source: path}

	if raw.TargetType == nil {
		return rule, errors.New(`missing required key "target-type"`)
	}
	switch domain.TargetType(*raw.TargetType) {
	case domain.TargetFile, domain.TargetDirectory:
		rule.TargetType = domain.TargetType(*raw.TargetType)
	default:
		return rule, errors.Errorf(`key "target-type" must be "file" or "directory", got %q`, *raw.TargetType)
	}

	if raw.DateDetection == nil {
		return rule, errors.New(`missing required key "date-detection"`)
	}
	if domain.DateDetection(*raw.DateDetection) != domain.DetectionFile {
		return rule, errors.Errorf(`key "date-detection" must be "file", got %q`, *raw.DateDetection)
	}
	rule.DateDetection = domain.DetectionFile

	if raw.MaximumItems == nil {
		return rule, errors.New(`missing required key "maximum-items"`)
	}
	if *raw.MaximumItems < 0 {
		return rule, errors.Errorf(`key "maximum-items" must not be negative, got %d`, *raw.MaximumItems)
	}
	rule.MaximumItems = *raw.MaximumItems

	if raw.MinimumItems != nil {
		if *raw.MinimumItems < 0 {
			return rule, errors.Errorf(`key "minimum-items" must not be negative, got %d`, *raw.MinimumItems)
		}
		rule.MinimumItems = *raw.MinimumItems
	}

	if raw.MaximumAge != nil {
		if *raw.MaximumAge <= 0 {
			return rule, errors.Errorf(`key "maximum-age" must be a positive number of days, got %d`, *raw.MaximumAge)
		}
		rule.MaximumAge = *raw.MaximumAge
	}

	if raw.Paths == nil {
		return rule, errors.New(`missing required key "paths"`)
	}
	rule.Paths = *raw.Paths

	if raw.DryRun != nil {
		rule.DryRun = *raw.DryRun
	}

	return rule, nil
}
