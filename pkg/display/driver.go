package display

import (
	"flag"
	"fmt"
	"sort"
	"strconv"
)

// DriverOption is a display driver option. This is used to
// configure a display driver.
type DriverOption struct {
	Name        string // name of the option
	Default     any    // default value of the option
	Value       any    // pointer to the value of the option
	Description string // description of the option
	Type        string // "int", "bool", "string", "float"
}

// InstalledDriver is a driver that has been installed. This is
// used to allow drivers to register their name.
type InstalledDriver struct {
	Name     string
	Priority int
	Options  []DriverOption
	Surface
}

// InstalledDrivers is a list of all the installed drivers, ordered by
// descending priority. Drivers should call display.Install in their
// init() function.
var InstalledDrivers []*InstalledDriver

// GetDriver returns the driver with the given name, or nil if no driver
// with that name is installed. The name "auto" selects the installed
// driver with the highest priority.
func GetDriver(name string) Surface {
	if name == "auto" {
		if len(InstalledDrivers) == 0 {
			return nil
		}
		return InstalledDrivers[0].Surface
	}
	for _, driver := range InstalledDrivers {
		if driver.Name == name {
			return driver.Surface
		}
	}

	return nil
}

// DriverNames returns the names of the installed drivers.
func DriverNames() []string {
	names := make([]string, len(InstalledDrivers))
	for i, driver := range InstalledDrivers {
		names[i] = driver.Name
	}
	return names
}

// Install registers a display driver with the given name. When the auto
// driver is requested, the driver with the highest priority is used.
func Install(name string, priority int, surface Surface, options []DriverOption) {
	InstalledDrivers = append(InstalledDrivers, &InstalledDriver{
		Name:     name,
		Priority: priority,
		Options:  options,
		Surface:  surface,
	})
	sort.SliceStable(InstalledDrivers, func(i, j int) bool {
		return InstalledDrivers[i].Priority > InstalledDrivers[j].Priority
	})
}

// RegisterFlags iterates through all the display driver options and
// registers them with the given flag set. Options shared by several
// drivers are merged into a single flag, unique options are prefixed with
// the name of their driver.
func RegisterFlags(fs *flag.FlagSet) {
	var names []string
	opts := make(map[string][]DriverOption)
	prefixes := make(map[string][]string)

	for _, driver := range InstalledDrivers {
		for _, opt := range driver.Options {
			if _, ok := opts[opt.Name]; !ok {
				names = append(names, opt.Name)
			}
			opts[opt.Name] = append(opts[opt.Name], opt)
			prefixes[opt.Name] = append(prefixes[opt.Name], driver.Name)
		}
	}
	sort.Strings(names)

	for _, name := range names {
		options := opts[name]
		if len(options) == 1 {
			// this option is unique and should be prefixed
			opt := options[0]
			optName := fmt.Sprintf("%s-%s", prefixes[name][0], opt.Name)
			switch opt.Type {
			case "string":
				fs.StringVar(opt.Value.(*string), optName, opt.Default.(string), opt.Description)
			case "bool":
				fs.BoolVar(opt.Value.(*bool), optName, opt.Default.(bool), opt.Description)
			case "int":
				fs.IntVar(opt.Value.(*int), optName, opt.Default.(int), opt.Description)
			case "float":
				fs.Float64Var(opt.Value.(*float64), optName, opt.Default.(float64), opt.Description)
			}
			continue
		}

		// this requires an option merge, the first option provides the
		// default and the description
		multi := &multiValue{defaultValue: options[0].Default}
		for _, opt := range options {
			multi.values = append(multi.values, opt.Value)
		}
		if err := multi.Set(multi.String()); err != nil {
			panic(fmt.Sprintf("display: invalid default for option %s: %v", name, err))
		}
		fs.Var(multi, name, options[0].Description)
	}
}

type multiValue struct {
	values       []any
	defaultValue any
}

func (m *multiValue) String() string {
	switch v := m.defaultValue.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

// Set updates all the merged options with the provided value.
func (m *multiValue) Set(value string) error {
	for _, ptr := range m.values {
		switch ptr := ptr.(type) {
		case *string:
			*ptr = value
		case *bool:
			b, err := strconv.ParseBool(value)
			if err != nil {
				return err
			}
			*ptr = b
		case *int:
			i, err := strconv.Atoi(value)
			if err != nil {
				return err
			}
			*ptr = i
		case *float64:
			f, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return err
			}
			*ptr = f
		default:
			return fmt.Errorf("unknown type: %T", ptr)
		}
	}

	return nil
}

func (m *multiValue) IsBoolFlag() bool {
	_, isBool := m.defaultValue.(bool)
	return isBool
}
