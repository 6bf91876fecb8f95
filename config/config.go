// SPDX-License-Identifier: MIT

// Package config reads YAML run files describing a Stocking–Lord equating
// problem and turns them into ready-to-use equating, quadrature and
// optimize values.
//
// A minimal file:
//
//	criterion: q1q2
//	form_x:
//	  - {id: i1, model: 3pl, a: 1.1, b: -0.4, c: 0.2}
//	form_y:
//	  - {id: i1, model: 3pl, a: 1.0, b: -0.2, c: 0.2}
//	y_distribution: {type: normal}
//	x_distribution: {type: normal}
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/equate/equating"
	"github.com/katalvlaran/equate/irt"
	"github.com/katalvlaran/equate/optimize"
	"github.com/katalvlaran/equate/quadrature"
)

// Model and distribution names accepted in run files.
const (
	Model3PL   = "3pl"
	Model2PL   = "2pl"
	ModelRasch = "rasch"
	ModelGRM   = "grm"

	DistNormal  = "normal"
	DistUniform = "uniform"
	DistPoints  = "points"

	MethodBFGS       = "bfgs"
	MethodNelderMead = "nelder-mead"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid run file")

// File is the root of a run file.
type File struct {
	Criterion     string        `yaml:"criterion"`
	Precision     *int          `yaml:"precision"`
	FormX         []Item        `yaml:"form_x"`
	FormY         []Item        `yaml:"form_y"`
	XDistribution *Distribution `yaml:"x_distribution"`
	YDistribution *Distribution `yaml:"y_distribution"`
	Optimizer     Optimizer     `yaml:"optimizer"`
}

// Item is one calibrated item. A and D are pointers so that an explicit 0
// reaches the irt constructors and is rejected there; only an absent key is
// defaulted. Rasch items ignore A.
type Item struct {
	ID         string    `yaml:"id"`
	Model      string    `yaml:"model"`
	A          *float64  `yaml:"a"`
	B          float64   `yaml:"b"`
	C          float64   `yaml:"c"`
	D          *float64  `yaml:"d"`
	Thresholds []float64 `yaml:"thresholds"`
}

// Distribution describes a quadrature distribution.
type Distribution struct {
	Type    string    `yaml:"type"`
	Mean    float64   `yaml:"mean"`
	SD      float64   `yaml:"sd"`
	Min     float64   `yaml:"min"`
	Max     float64   `yaml:"max"`
	N       int       `yaml:"n"`
	Theta   []float64 `yaml:"theta"`
	Weights []float64 `yaml:"weights"`
}

// Optimizer selects and tunes the minimizer.
type Optimizer struct {
	Method      string        `yaml:"method"`
	MaxIters    int           `yaml:"max_iters"`
	GradTol     float64       `yaml:"grad_tol"`
	FuncTol     float64       `yaml:"func_tol"`
	InitialStep float64       `yaml:"initial_step"`
	TimeLimit   time.Duration `yaml:"time_limit"`
	Starts      [][]float64   `yaml:"starts"`
}

// Load reads, defaults and validates the run file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes, defaults and validates a run file.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}
	f.applyDefaults()
	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

func (f *File) applyDefaults() {
	if f.Criterion == "" {
		f.Criterion = equating.Q1Q2.String()
	}
	for i := range f.FormX {
		f.FormX[i].applyDefaults()
	}
	for i := range f.FormY {
		f.FormY[i].applyDefaults()
	}
	if f.XDistribution != nil {
		f.XDistribution.applyDefaults()
	}
	if f.YDistribution != nil {
		f.YDistribution.applyDefaults()
	}

	def := optimize.DefaultOptions()
	o := &f.Optimizer
	if o.Method == "" {
		o.Method = MethodBFGS
	}
	if o.MaxIters == 0 {
		o.MaxIters = def.MaxIters
	}
	if o.GradTol == 0 {
		o.GradTol = def.GradTol
	}
	if o.FuncTol == 0 {
		o.FuncTol = def.FuncTol
	}
	if o.InitialStep == 0 {
		o.InitialStep = def.InitialStep
	}
	if len(o.Starts) == 0 {
		o.Starts = [][]float64{{0, 1}}
	}
}

func (it *Item) applyDefaults() {
	it.Model = strings.ToLower(strings.TrimSpace(it.Model))
	if it.Model == "" {
		it.Model = Model3PL
	}
	if it.D == nil {
		d := irt.NormalScale
		if it.Model == ModelRasch {
			d = irt.LogisticScale
		}
		it.D = &d
	}
	if it.A == nil && it.Model != ModelRasch {
		a := 1.0
		it.A = &a
	}
}

func (d *Distribution) applyDefaults() {
	d.Type = strings.ToLower(strings.TrimSpace(d.Type))
	if d.Type == "" {
		d.Type = DistNormal
	}
	if d.Type == DistPoints {
		return
	}
	if d.SD == 0 {
		d.SD = 1
	}
	if d.Min == 0 && d.Max == 0 {
		d.Min, d.Max = quadrature.DefaultMin, quadrature.DefaultMax
	}
	if d.N == 0 {
		d.N = quadrature.DefaultPoints
	}
}

// Validate checks what can be checked without building models. Parameter
// domains are enforced later by the irt and quadrature constructors.
func (f *File) Validate() error {
	if _, err := equating.ParseCriterion(f.Criterion); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if f.Precision != nil && *f.Precision < 0 {
		return fmt.Errorf("%w: precision must be >= 0", ErrInvalid)
	}
	if len(f.FormY) == 0 {
		return fmt.Errorf("%w: form_y has no items", ErrInvalid)
	}
	if err := validateItems("form_x", f.FormX); err != nil {
		return err
	}
	if err := validateItems("form_y", f.FormY); err != nil {
		return err
	}
	if f.YDistribution == nil {
		return fmt.Errorf("%w: y_distribution is required", ErrInvalid)
	}
	switch f.Optimizer.Method {
	case MethodBFGS, MethodNelderMead:
	default:
		return fmt.Errorf("%w: unknown optimizer method %q", ErrInvalid, f.Optimizer.Method)
	}
	for i, s := range f.Optimizer.Starts {
		if len(s) != 2 {
			return fmt.Errorf("%w: optimizer.starts[%d] must be [intercept, slope]", ErrInvalid, i)
		}
	}

	return nil
}

func validateItems(form string, items []Item) error {
	seen := make(map[string]struct{}, len(items))
	for i, it := range items {
		if it.ID == "" {
			return fmt.Errorf("%w: %s[%d] has no id", ErrInvalid, form, i)
		}
		if _, dup := seen[it.ID]; dup {
			return fmt.Errorf("%w: %s has duplicate id %q", ErrInvalid, form, it.ID)
		}
		seen[it.ID] = struct{}{}
		switch it.Model {
		case Model3PL, Model2PL, ModelRasch, ModelGRM:
		default:
			return fmt.Errorf("%w: %s item %q has unknown model %q", ErrInvalid, form, it.ID, it.Model)
		}
	}

	return nil
}

// Build returns the irt model for the item.
func (it Item) Build() (equating.ItemModel, error) {
	var (
		m   equating.ItemModel
		err error
	)
	a, d := orDefault(it.A, 1), orDefault(it.D, irt.NormalScale)
	switch it.Model {
	case Model3PL:
		m, err = irt.NewLogistic3PL(a, it.B, it.C, d)
	case Model2PL:
		m, err = irt.NewLogistic2PL(a, it.B, d)
	case ModelRasch:
		m, err = irt.NewLogistic3PL(1, it.B, 0, orDefault(it.D, irt.LogisticScale))
	case ModelGRM:
		m, err = irt.NewGradedResponse(a, it.Thresholds, d)
	default:
		err = ErrInvalid
	}
	if err != nil {
		return nil, fmt.Errorf("config: item %q: %w", it.ID, err)
	}

	return m, nil
}

func orDefault(v *float64, def float64) float64 {
	if v == nil {
		return def
	}

	return *v
}

// Build returns the quadrature distribution.
func (d Distribution) Build() (*quadrature.Points, error) {
	var (
		p   *quadrature.Points
		err error
	)
	switch d.Type {
	case DistNormal:
		p, err = quadrature.NewNormal(d.Mean, d.SD, d.Min, d.Max, d.N)
	case DistUniform:
		p, err = quadrature.NewUniform(d.Min, d.Max, d.N)
	case DistPoints:
		p, err = quadrature.NewPoints(d.Theta, d.Weights)
	default:
		return nil, fmt.Errorf("%w: unknown distribution type %q", ErrInvalid, d.Type)
	}
	if err != nil {
		return nil, fmt.Errorf("config: %s distribution: %w", d.Type, err)
	}

	return p, nil
}

// Forms builds the Form X and Form Y item sets in file order.
func (f *File) Forms() (x, y *equating.ItemSet, err error) {
	if x, err = buildSet(f.FormX); err != nil {
		return nil, nil, err
	}
	if y, err = buildSet(f.FormY); err != nil {
		return nil, nil, err
	}

	return x, y, nil
}

func buildSet(items []Item) (*equating.ItemSet, error) {
	s := equating.NewItemSet()
	for _, it := range items {
		m, err := it.Build()
		if err != nil {
			return nil, err
		}
		s.Set(it.ID, m)
	}

	return s, nil
}

// Objective builds the Stocking–Lord objective. Without x_distribution the
// Y-only constructor is used and the criterion becomes Q1.
func (f *File) Objective() (*equating.StockingLord, error) {
	x, y, err := f.Forms()
	if err != nil {
		return nil, err
	}
	crit, err := equating.ParseCriterion(f.Criterion)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	yd, err := f.YDistribution.Build()
	if err != nil {
		return nil, err
	}

	var sl *equating.StockingLord
	if f.XDistribution == nil {
		sl, err = equating.NewYOnly(x, y, yd, crit)
	} else {
		xd, xerr := f.XDistribution.Build()
		if xerr != nil {
			return nil, xerr
		}
		sl, err = equating.New(x, y, xd, yd, crit)
	}
	if err != nil {
		return nil, err
	}
	if f.Precision != nil {
		sl.SetPrecision(*f.Precision)
	}

	return sl, nil
}

// Minimizer returns the configured optimize.Method.
func (o Optimizer) Minimizer() optimize.Method {
	if o.Method == MethodNelderMead {
		return optimize.NelderMead
	}

	return optimize.BFGS
}

// Options converts the section into optimize.Options.
func (o Optimizer) Options(logger *slog.Logger) optimize.Options {
	return optimize.Options{
		MaxIters:    o.MaxIters,
		GradTol:     o.GradTol,
		FuncTol:     o.FuncTol,
		InitialStep: o.InitialStep,
		TimeLimit:   o.TimeLimit,
		Logger:      logger,
	}
}
