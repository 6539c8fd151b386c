package optionset_test

import (
	"fmt"
	"os"

	"github.com/0xalexb/hjarta-attr/option"
	"github.com/0xalexb/hjarta-attr/optionset"
)

func ExampleSet_Assign() {
	set := optionset.NewSet(nil, discardLogger())

	rport, _ := option.NewPortOption("80", "Target port")
	_ = set.Add("rport", rport)

	fmt.Println(set.Assign("rport", "8080"))
	fmt.Println(set.Assign("rport", "99999"))

	value, _ := set.Resolve("rport")
	fmt.Println(value)
	// Output:
	// <nil>
	// setting rport: invalid port option value "99999": port value should be between 1 and 65535
	// 8080
}

func ExampleSet_Describe() {
	set := optionset.NewSet(nil, discardLogger())

	rhost, _ := option.NewIPOption("192.168.1.1", "Target IPv4 or IPv6 address")
	_ = set.Add("rhost", rhost)
	_ = set.Add("verbose", option.NewBoolOption(true, "Verbosity enabled"))

	_ = set.Describe(os.Stdout, 0)
	// Output:
	// Name      Current settings   Description
	// ----      ----------------   -----------
	// rhost     192.168.1.1        Target IPv4 or IPv6 address
	// verbose   true               Verbosity enabled
}
