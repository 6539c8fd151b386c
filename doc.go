// Package attr bootstraps an Fx application that hosts typed option sets.
//
// Options themselves live in package option; package optionset groups them per host
// and loads their values from YAML. This package supplies the shared slog logger
// and turns option set declarations into Fx modules:
//
//	app := attr.NewApp(
//	    attr.WithLogLevel("debug"),
//	    attr.WithOptionSet("telnet_default", declareTelnet,
//	        optionset.WithConfigFile("hjarta.yaml", "modules:telnet_default")),
//	)
package attr
