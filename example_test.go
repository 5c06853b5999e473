package gitattributes_test

import (
	"fmt"

	"github.com/npillmayer/gitattributes"
)

func ExampleParse() {
	rules, err := gitattributes.Parse(`# line endings
*.sln       merge=binary
*.png       binary
"a b.txt"   text crlf=input
`)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, rule := range rules {
		fmt.Printf("%-8s => %s\n", rule.Pattern, rule.Attributes)
	}
	// Output:
	// *.sln    => merge=binary
	// *.png    => binary -diff
	// a b.txt  => text crlf=input eol=lf
}
