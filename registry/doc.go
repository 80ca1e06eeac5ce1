// Package registry holds the named loggers of an application.
//
// A Registry is an explicit context object: Init builds the "core" and
// "client" loggers (plus any extra names), Shutdown closes them together with
// every target they own. Per-severity helpers such as CoreError route a
// formatted message to the matching logger and do nothing before Init.
//
//	reg := registry.New()
//	if err := reg.Init(); err != nil {
//		return err
//	}
//	defer reg.Shutdown()
//	reg.Core().AddTarget(simplelog.NewConsoleSink())
//	reg.CoreError("{1} and {0}", 1.5, "test")
package registry
