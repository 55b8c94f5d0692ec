// Copyright 2025 Greenmask
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmdrun

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/pighand/codebuilder/internal/common/models"
	"github.com/pighand/codebuilder/internal/config"
	"github.com/pighand/codebuilder/internal/mysql/introspect"
	"github.com/pighand/codebuilder/internal/mysql/relation"
	"github.com/pighand/codebuilder/internal/params"
	"github.com/pighand/codebuilder/internal/storages/directory"
	"github.com/pighand/codebuilder/internal/template"
	"github.com/pighand/codebuilder/internal/writer"
)

type introspector interface {
	Introspect(ctx context.Context) (introspect.Result, error)
}

type relationBuilder interface {
	Build(ctx context.Context) models.RelationMap
}

// Summary - counters of a finished generation run.
type Summary struct {
	Tables  int
	Written int
	Skipped int
	DryRun  int
}

// GenerateRuntime - renders every template for every table and writes the results one by one.
type GenerateRuntime struct {
	in        introspector
	rb        relationBuilder
	assembler *params.Assembler
	templates []*template.Template
	writers   []*writer.Writer
	state     *writer.State
}

// NewGenerateRuntime - rb may be nil, then relations are not collected. Each template writes
// into its own SaveFilePath under the root of w.
func NewGenerateRuntime(
	in introspector,
	rb relationBuilder,
	assembler *params.Assembler,
	templates []*template.Template,
	w *writer.Writer,
	state *writer.State,
) *GenerateRuntime {
	writers := make([]*writer.Writer, len(templates))
	for idx, tmpl := range templates {
		writers[idx] = w.Sub(tmpl.SaveFilePath)
	}
	return &GenerateRuntime{
		in:        in,
		rb:        rb,
		assembler: assembler,
		templates: templates,
		writers:   writers,
		state:     state,
	}
}

// Run - introspects the database and generates the files. Items are processed strictly in order,
// so the answers given for one file apply to the following ones.
func (r *GenerateRuntime) Run(ctx context.Context) (Summary, error) {
	var summary Summary
	res, err := r.in.Introspect(ctx)
	if err != nil {
		return summary, fmt.Errorf("introspect: %w", err)
	}
	if len(res.Tables) == 0 {
		log.Ctx(ctx).Warn().Msg("no tables found, nothing to generate")
		return summary, nil
	}

	var relations models.RelationMap
	if r.rb != nil {
		relations = r.rb.Build(ctx)
	}

	for _, table := range res.Tables {
		if r.state.Stopped() {
			log.Ctx(ctx).Info().Msg("writing is stopped, remaining tables are skipped")
			break
		}
		summary.Tables++
		tableCtx := log.Ctx(ctx).With().
			Str(models.MetaKeyTableName, table.TableName).
			Logger().
			WithContext(ctx)
		if err := r.generateTable(tableCtx, table, res.TableColumnMap[table.TableName], relations, &summary); err != nil {
			return summary, fmt.Errorf("table %s: %w", table.TableName, err)
		}
	}
	return summary, nil
}

func (r *GenerateRuntime) generateTable(
	ctx context.Context,
	table models.TableInfo,
	columns []models.ColumnInfo,
	relations models.RelationMap,
	summary *Summary,
) error {
	data := r.assembler.Assemble(table, columns, relations)
	for idx, tmpl := range r.templates {
		if r.state.Stopped() {
			return nil
		}
		tmplCtx := log.Ctx(ctx).With().
			Str(models.MetaKeyTemplateName, tmpl.Name).
			Logger().
			WithContext(ctx)

		content, err := tmpl.Render(data)
		if err != nil {
			return err
		}
		outcome, err := r.writers[idx].Write(tmplCtx, r.state, tmpl.FileName(data.TableFileName()), content)
		if err != nil {
			return err
		}
		switch outcome {
		case writer.OutcomeWritten:
			summary.Written++
		case writer.OutcomeSkipped:
			summary.Skipped++
		case writer.OutcomeDryRun:
			summary.DryRun++
		}
	}
	return nil
}

func conflictMode(policy string) writer.Mode {
	switch policy {
	case config.ConflictReplace:
		return writer.ModeReplaceAll
	case config.ConflictSkip:
		return writer.ModeSkipExisting
	default:
		return writer.ModeAsk
	}
}

// RunGenerate - the generate command entry point.
func RunGenerate(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	db, err := openDB(ctx, cfg.Connection)
	if err != nil {
		return err
	}
	defer closeDB(ctx, db)
	return Generate(ctx, cfg, db, writer.NewTerminalPrompter(in, out), out)
}

// Generate - runs the generation using the provided connection. The inputs that do not need the
// database are checked first.
func Generate(
	ctx context.Context, cfg *config.Config, db introspect.Querier, prompter writer.Prompter, out io.Writer,
) error {
	assembler, err := params.NewAssembler(ctx, cfg)
	if err != nil {
		return fmt.Errorf("assemble custom parameters: %w", err)
	}
	runID, _ := assembler.Custom()[params.KeyRunID].(string)
	ctx = log.Ctx(ctx).With().
		Str(models.MetaKeyEngine, "mysql").
		Str(models.MetaKeyRunID, runID).
		Logger().
		WithContext(ctx)

	set, err := template.LoadSet(cfg)
	if err != nil {
		return fmt.Errorf("load templates: %w", err)
	}
	if javaPackage, _ := assembler.Custom()[params.KeyJavaPackage].(string); javaPackage == "" &&
		set.Name == template.BuiltinPighandSpring {
		log.Ctx(ctx).Warn().
			Str("SavePath", cfg.SavePath).
			Msg("save path has no \"java\" segment, generated classes use the bare sub packages")
	}
	templates, err := template.Compile(set)
	if err != nil {
		return fmt.Errorf("compile templates: %w", err)
	}

	st, err := directory.NewStorage(cfg.SavePath)
	if err != nil {
		return fmt.Errorf("open save path: %w", err)
	}

	in := introspect.NewIntrospector(db, cfg)
	var rb relationBuilder
	if cfg.Relation.Enabled {
		rb = relation.NewBuilder(db, in, cfg.Relation.Table)
	}
	w := writer.NewWriter(st, prompter, out, cfg.DryRun)
	state := writer.NewState(conflictMode(cfg.Conflict))

	summary, err := NewGenerateRuntime(in, rb, assembler, templates, w, state).Run(ctx)
	if err != nil {
		return err
	}
	log.Ctx(ctx).Info().
		Str("TemplateSet", set.Name).
		Str("SavePath", st.GetCwd()).
		Int("Tables", summary.Tables).
		Int("Written", summary.Written).
		Int("Skipped", summary.Skipped).
		Int("DryRun", summary.DryRun).
		Msg("generation completed")
	return nil
}
