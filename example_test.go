package tokenizer_test

import (
	"fmt"

	"github.com/coregx/tokenizer"
	"github.com/coregx/tokenizer/common"
)

func ExampleNew() {
	t, err := tokenizer.New(
		[]tokenizer.Literal{
			{Name: "add", Text: "+"},
			{Name: "increment", Text: "++"},
		},
		[]tokenizer.Pattern{
			{Name: "digit", Source: `[0-9]`},
		},
	)
	if err != nil {
		panic(err)
	}

	tokens, err := t.TokenizeAll("1++2")
	if err != nil {
		panic(err)
	}
	for _, tok := range tokens {
		fmt.Printf("%s %q\n", tok.Name, tok.Value)
	}
	// Output:
	// digit "1"
	// increment "++"
	// digit "2"
}

func ExampleTokenizer_Tokenize() {
	t, err := tokenizer.New(nil, []tokenizer.Pattern{common.Word})
	if err != nil {
		panic(err)
	}

	for tok, err := range t.Tokenize("thread-") {
		if err != nil {
			fmt.Println("error:", err)
			break
		}
		fmt.Printf("%s %q\n", tok.Name, tok.Value)
	}
	// Output:
	// word "thread"
	// error: bad token '-' at position 6
}

func ExampleTokenizer_TokenizeAll() {
	config := tokenizer.DefaultConfig()
	config.IgnoreWhitespace = true

	t, err := tokenizer.NewWithConfig(
		[]tokenizer.Literal{{Name: "assign", Text: "="}},
		[]tokenizer.Pattern{common.CName, common.Number},
		config,
	)
	if err != nil {
		panic(err)
	}

	tokens, err := t.TokenizeAll("answer = 42")
	if err != nil {
		panic(err)
	}
	for _, tok := range tokens {
		fmt.Printf("%s %q\n", tok.Name, tok.Value)
	}
	// Output:
	// c_name "answer"
	// assign "="
	// number "42"
}
