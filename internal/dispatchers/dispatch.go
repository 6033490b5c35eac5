package dispatchers

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/footprint-tools/stockline/internal/constraint"
	"github.com/footprint-tools/stockline/internal/domain"
	"github.com/footprint-tools/stockline/internal/literal"
	"github.com/footprint-tools/stockline/internal/log"
	"github.com/footprint-tools/stockline/internal/ui/style"
	"github.com/footprint-tools/stockline/internal/usage"
)

// Results returned by Process besides a handler's own value.
const (
	ResultOK    = "OK"
	ResultError = "ERROR"
)

const defaultSuggestionsCount = 3

// Dispatcher turns command lines into handler invocations.
// It owns the Registry; commands are registered before Start and the
// registry is read-only afterwards.
type Dispatcher struct {
	registry  *Registry
	parser    LiteralParser
	validator Validator
	out       io.Writer
	logger    domain.Logger
	styler    domain.Styler
	quit      func()
	strict    bool
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithOutput sets where failure details, help and built-in output are written.
func WithOutput(w io.Writer) Option {
	return func(d *Dispatcher) {
		d.out = w
	}
}

func WithLogger(l domain.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = l
	}
}

func WithStyler(s domain.Styler) Option {
	return func(d *Dispatcher) {
		d.styler = s
	}
}

func WithParser(p LiteralParser) Option {
	return func(d *Dispatcher) {
		d.parser = p
	}
}

func WithValidator(v Validator) Option {
	return func(d *Dispatcher) {
		d.validator = v
	}
}

// WithQuitHook replaces the default os.Exit(0) run by the Q command.
func WithQuitHook(fn func()) Option {
	return func(d *Dispatcher) {
		d.quit = fn
	}
}

// WithStrictArguments makes tokens beyond the declared arguments an input error.
func WithStrictArguments(strict bool) Option {
	return func(d *Dispatcher) {
		d.strict = strict
	}
}

// New creates a Dispatcher with the built-in commands already registered.
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		registry:  NewRegistry(),
		parser:    literal.NewParser(),
		validator: constraint.NewValidator(),
		out:       os.Stdout,
		logger:    log.NopLogger{},
		styler:    style.NopStyler{},
		quit:      func() { os.Exit(0) },
	}
	for _, opt := range opts {
		opt(d)
	}

	if err := d.registry.Register(builtins{d: d}); err != nil {
		// built-in names are constants; failing here is a programming error
		panic(fmt.Sprintf("dispatchers: register built-ins: %v", err))
	}
	return d
}

// Register adds a controller's commands. Must be called before Start.
func (d *Dispatcher) Register(c Controller) error {
	if err := d.registry.Register(c); err != nil {
		d.logger.Error("dispatch: registration failed: %v", err)
		return err
	}
	d.logger.Debug("dispatch: registered controller, %d commands total", d.registry.Len())
	return nil
}

// Registry exposes the registered commands for read-only use.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Start closes the registration phase and prints the command listing.
// Later calls do nothing.
func (d *Dispatcher) Start() {
	if d.registry.Sealed() {
		d.logger.Debug("dispatch: already started")
		return
	}
	d.registry.Seal()
	d.logger.Info("dispatch: processing started with %d commands", d.registry.Len())
	d.WriteHelp(d.out)
}

// Process runs one full dispatch cycle for a command line and returns the
// text to show for it. Per-argument failures are written to the output
// before ERROR is returned.
func (d *Dispatcher) Process(line string) string {
	tokens := strings.Fields(line)

	var name string
	if len(tokens) > 0 {
		name = tokens[0]
		tokens = tokens[1:]
	}

	cmd, ok := d.registry.Lookup(name)
	if !ok {
		if suggestions := FindSimilarCommands(name, d.registry.Names(), defaultSuggestionsCount); len(suggestions) > 0 {
			d.logger.Debug("dispatch: unknown command %q, closest: %s", name, strings.Join(suggestions, ", "))
		} else {
			d.logger.Debug("dispatch: unknown command %q", name)
		}
		return usage.UnknownCommand(name).Error()
	}

	outcomes := bindAll(d.parser, cmd.Args, tokens)

	var failures []string
	for _, o := range outcomes {
		if !o.OK() {
			failures = append(failures, o.Message)
		}
	}
	if d.strict && len(tokens) > len(cmd.Args) {
		for _, extra := range tokens[len(cmd.Args):] {
			failures = append(failures, usage.UnexpectedArgument(extra).Error())
		}
	}
	if len(failures) > 0 {
		d.report(failures)
		d.logger.Debug("dispatch: %s rejected, %d argument errors", cmd.Name, len(failures))
		return ResultError
	}

	values := make(Args, len(outcomes))
	for i, o := range outcomes {
		values[i] = o.Value
	}

	if found := violations(d.validator, cmd.Args, values); len(found) > 0 {
		d.report(renderViolations(cmd.Args, found))
		d.logger.Debug("dispatch: %s rejected, %d constraint violations", cmd.Name, len(found))
		return ResultError
	}

	result, err := d.invoke(cmd, values)
	if err != nil {
		return ResultError
	}
	return render(result)
}

func (d *Dispatcher) report(lines []string) {
	for _, line := range lines {
		fmt.Fprintln(d.out, d.styler.Warning(line))
	}
}

// invoke calls the handler. Returned errors and panics both collapse into an
// error; details go to the log only.
func (d *Dispatcher) invoke(cmd CommandSpec, args Args) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("dispatch: %s panicked: %v", cmd.Name, r)
			result, err = nil, fmt.Errorf("%s: panic: %v", cmd.Name, r)
		}
	}()

	result, err = cmd.Action(args)
	if err != nil {
		d.logger.Warn("dispatch: %s failed: %v", cmd.Name, err)
		return nil, err
	}
	d.logger.Debug("dispatch: %s succeeded", cmd.Name)
	return result, nil
}

// render turns a handler value into its result text. A nil value, typed or
// not, means the handler has nothing to show.
func render(result any) string {
	if isNil(result) {
		return ResultOK
	}
	return fmt.Sprint(result)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
