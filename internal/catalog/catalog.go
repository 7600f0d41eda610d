package catalog

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"sort"

	"github.com/shinji-kodama/gof-patterns/internal/config"
	"github.com/shinji-kodama/gof-patterns/internal/model"
	"github.com/shinji-kodama/gof-patterns/internal/patterns/abstractfactory"
	"github.com/shinji-kodama/gof-patterns/internal/patterns/adapter"
	"github.com/shinji-kodama/gof-patterns/internal/patterns/bridge"
	"github.com/shinji-kodama/gof-patterns/internal/patterns/builder"
	"github.com/shinji-kodama/gof-patterns/internal/patterns/chain"
	"github.com/shinji-kodama/gof-patterns/internal/patterns/command"
	"github.com/shinji-kodama/gof-patterns/internal/patterns/composite"
	"github.com/shinji-kodama/gof-patterns/internal/patterns/decorator"
	"github.com/shinji-kodama/gof-patterns/internal/patterns/facade"
	"github.com/shinji-kodama/gof-patterns/internal/patterns/factory"
	"github.com/shinji-kodama/gof-patterns/internal/patterns/flyweight"
	"github.com/shinji-kodama/gof-patterns/internal/patterns/interpreter"
	"github.com/shinji-kodama/gof-patterns/internal/patterns/iterator"
	"github.com/shinji-kodama/gof-patterns/internal/patterns/mediator"
	"github.com/shinji-kodama/gof-patterns/internal/patterns/memento"
	"github.com/shinji-kodama/gof-patterns/internal/patterns/observer"
	"github.com/shinji-kodama/gof-patterns/internal/patterns/prototype"
	"github.com/shinji-kodama/gof-patterns/internal/patterns/proxy"
	"github.com/shinji-kodama/gof-patterns/internal/patterns/singleton"
	"github.com/shinji-kodama/gof-patterns/internal/patterns/state"
	"github.com/shinji-kodama/gof-patterns/internal/patterns/strategy"
	"github.com/shinji-kodama/gof-patterns/internal/patterns/templatemethod"
	"github.com/shinji-kodama/gof-patterns/internal/patterns/visitor"
)

// ErrNotFound is returned when a name does not match any registered demo.
var ErrNotFound = errors.New("pattern not found")

// RunFunc is the uniform signature every demonstration is adapted to.
type RunFunc func(w io.Writer, s config.Settings) error

// Entry is one registered demonstration.
type Entry struct {
	model.PatternInfo
	Run RunFunc
}

// plain adapts a driver that takes no settings.
func plain(demo func(io.Writer) error) RunFunc {
	return func(w io.Writer, _ config.Settings) error {
		return demo(w)
	}
}

// Catalog is an ordered, name-indexed set of demonstrations.
type Catalog struct {
	entries []Entry
	byName  map[string]int
}

// New returns an empty catalog. Use Default for the built-in demonstrations.
func New() *Catalog {
	return &Catalog{byName: make(map[string]int)}
}

// Register adds an entry. It rejects invalid metadata, a nil RunFunc, and
// duplicate names.
func (c *Catalog) Register(e Entry) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if e.Run == nil {
		return fmt.Errorf("pattern %q: run function must not be nil", e.Name)
	}
	if _, exists := c.byName[e.Name]; exists {
		return fmt.Errorf("pattern %q is already registered", e.Name)
	}
	c.byName[e.Name] = len(c.entries)
	c.entries = append(c.entries, e)
	return nil
}

// Lookup returns the entry registered under name.
func (c *Catalog) Lookup(name string) (Entry, error) {
	i, ok := c.byName[name]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return c.entries[i], nil
}

// Entries returns every entry in registration order.
func (c *Catalog) Entries() []Entry {
	return append([]Entry(nil), c.entries...)
}

// List returns the metadata of all entries in category, sorted by name.
// An empty category matches every entry.
func (c *Catalog) List(category model.Category) []model.PatternInfo {
	infos := make([]model.PatternInfo, 0, len(c.entries))
	for _, e := range c.entries {
		if category == "" || e.Category == category {
			infos = append(infos, e.PatternInfo)
		}
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name < infos[j].Name
	})
	return infos
}

// Run executes the named demonstration, writing its output to w.
// Demo failures are wrapped with the pattern name.
func (c *Catalog) Run(w io.Writer, name string, s config.Settings) error {
	e, err := c.Lookup(name)
	if err != nil {
		return err
	}
	if err := e.Run(w, s); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// Default returns a catalog holding the 23 built-in demonstrations.
func Default() *Catalog {
	c := New()
	for _, e := range builtin() {
		if err := c.Register(e); err != nil {
			// The built-in table is static; a failure here is a programming error.
			panic(err)
		}
	}
	return c
}

func builtin() []Entry {
	return []Entry{
		{
			PatternInfo: model.PatternInfo{Name: "abstract-factory", Title: "Abstract Factory", Category: model.CategoryCreational,
				Summary: "Platform UI factories create matching buttons and checkboxes"},
			Run: func(w io.Writer, s config.Settings) error {
				return abstractfactory.Demo(w, s.Platform)
			},
		},
		{
			PatternInfo: model.PatternInfo{Name: "adapter", Title: "Adapter", Category: model.CategoryStructural,
				Summary: "PayPal and Stripe clients adapted to one payment gateway"},
			Run: plain(adapter.Demo),
		},
		{
			PatternInfo: model.PatternInfo{Name: "bridge", Title: "Bridge", Category: model.CategoryStructural,
				Summary: "Remote controls drive TVs and radios through a device interface"},
			Run: func(w io.Writer, s config.Settings) error {
				return bridge.Demo(w, rand.New(rand.NewSource(s.Seed)))
			},
		},
		{
			PatternInfo: model.PatternInfo{Name: "builder", Title: "Builder", Category: model.CategoryCreational,
				Summary: "A director builds luxury and simple houses step by step"},
			Run: plain(builder.Demo),
		},
		{
			PatternInfo: model.PatternInfo{Name: "chain-of-responsibility", Title: "Chain of Responsibility", Category: model.CategoryBehavioral,
				Summary: "Support tickets escalate through three support levels"},
			Run: plain(chain.Demo),
		},
		{
			PatternInfo: model.PatternInfo{Name: "command", Title: "Command", Category: model.CategoryBehavioral,
				Summary: "A remote control executes light and fan commands"},
			Run: plain(command.Demo),
		},
		{
			PatternInfo: model.PatternInfo{Name: "composite", Title: "Composite", Category: model.CategoryStructural,
				Summary: "Files and folders printed through one component interface"},
			Run: plain(composite.Demo),
		},
		{
			PatternInfo: model.PatternInfo{Name: "decorator", Title: "Decorator", Category: model.CategoryStructural,
				Summary: "Coffee add-ons wrap a drink to extend cost and description"},
			Run: plain(decorator.Demo),
		},
		{
			PatternInfo: model.PatternInfo{Name: "facade", Title: "Facade", Category: model.CategoryStructural,
				Summary: "A home theater hides four subsystems behind two calls"},
			Run: func(w io.Writer, s config.Settings) error {
				return facade.Demo(w, s.Movie)
			},
		},
		{
			PatternInfo: model.PatternInfo{Name: "factory", Title: "Factory", Category: model.CategoryCreational,
				Summary: "A factory creates email, SMS and push notifications by name"},
			Run: plain(factory.Demo),
		},
		{
			PatternInfo: model.PatternInfo{Name: "flyweight", Title: "Flyweight", Category: model.CategoryStructural,
				Summary: "Forest trees share tree types through a factory"},
			Run: plain(flyweight.Demo),
		},
		{
			PatternInfo: model.PatternInfo{Name: "interpreter", Title: "Interpreter", Category: model.CategoryBehavioral,
				Summary: "An expression tree evaluates (5 + 3) - 2"},
			Run: plain(interpreter.Demo),
		},
		{
			PatternInfo: model.PatternInfo{Name: "iterator", Title: "Iterator", Category: model.CategoryBehavioral,
				Summary: "A user list is traversed without exposing its storage"},
			Run: plain(iterator.Demo),
		},
		{
			PatternInfo: model.PatternInfo{Name: "mediator", Title: "Mediator", Category: model.CategoryBehavioral,
				Summary: "A chat room relays messages between users"},
			Run: plain(mediator.Demo),
		},
		{
			PatternInfo: model.PatternInfo{Name: "memento", Title: "Memento", Category: model.CategoryBehavioral,
				Summary: "A text editor restores saved snapshots on undo"},
			Run: plain(memento.Demo),
		},
		{
			PatternInfo: model.PatternInfo{Name: "observer", Title: "Observer", Category: model.CategoryBehavioral,
				Summary: "Displays subscribe to weather station temperature changes"},
			Run: plain(observer.Demo),
		},
		{
			PatternInfo: model.PatternInfo{Name: "prototype", Title: "Prototype", Category: model.CategoryCreational,
				Summary: "A document is cloned and the copy modified"},
			Run: plain(prototype.Demo),
		},
		{
			PatternInfo: model.PatternInfo{Name: "proxy", Title: "Proxy", Category: model.CategoryStructural,
				Summary: "An image proxy loads the real image on first display"},
			Run: plain(proxy.Demo),
		},
		{
			PatternInfo: model.PatternInfo{Name: "singleton", Title: "Singleton", Category: model.CategoryCreational,
				Summary: "A lazily initialized resource is shared by every caller"},
			Run: plain(singleton.Demo),
		},
		{
			PatternInfo: model.PatternInfo{Name: "state", Title: "State", Category: model.CategoryBehavioral,
				Summary: "A document moves through draft, review and published states"},
			Run: plain(state.Demo),
		},
		{
			PatternInfo: model.PatternInfo{Name: "strategy", Title: "Strategy", Category: model.CategoryBehavioral,
				Summary: "An order pays with interchangeable payment strategies"},
			Run: plain(strategy.Demo),
		},
		{
			PatternInfo: model.PatternInfo{Name: "template-method", Title: "Template Method", Category: model.CategoryBehavioral,
				Summary: "XML and JSON processors share a fixed load/parse/save skeleton"},
			Run: plain(templatemethod.Demo),
		},
		{
			PatternInfo: model.PatternInfo{Name: "visitor", Title: "Visitor", Category: model.CategoryBehavioral,
				Summary: "Area and perimeter visitors operate on circles and rectangles"},
			Run: plain(visitor.Demo),
		},
	}
}
