// Package optionset holds named options on behalf of a host object.
//
// A Set maps option names to option.Option values, assigns each option its label,
// and routes assignments through the owning host so that host dependent options
// (encoders) can be validated:
//
//	set := optionset.NewSet(host, logger)
//	_ = set.Add("rhost", must(option.NewIPOption("", "Target address")))
//	_ = set.Add("rport", must(option.NewPortOption("80", "Target port")))
//
//	err := set.Assign("rport", "8080")
//	_ = set.Describe(os.Stdout, 60)
//
// Raw values can also be loaded from YAML. A Config document carries a "values"
// mapping; scalars are converted to their string form and sequences become comma
// separated word lists:
//
//	exploit:
//	  values:
//	    rhost: 192.168.1.1
//	    rport: 8080
//	    usernames: [admin, root]
//
// NewModule wires a Set into an Fx container under a name tag, applying values from
// a config file, from a Config supplied to the container and from WithValues, in
// that order.
package optionset
