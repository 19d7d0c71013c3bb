package textseg_test

import (
	"fmt"

	"github.com/scalecode-solutions/textseg"
)

func ExampleSegmenter() {
	seg, err := textseg.NewSegmenter(textseg.BuiltinRules(), textseg.KindWord)
	if err != nil {
		panic(err)
	}
	text := []byte("Hello, world!")
	it := seg.SegmentUTF8(text)
	prev := int32(0)
	for b := it.Next(); b != textseg.Done; b = it.Next() {
		fmt.Printf("%q\n", text[prev:b])
		prev = b
	}
	// Output:
	// "Hello"
	// ","
	// " "
	// "world"
	// "!"
}

func ExampleSegmenter_sentences() {
	seg, err := textseg.NewSegmenter(textseg.BuiltinRules(), textseg.KindSentence)
	if err != nil {
		panic(err)
	}
	text := []byte("Dr. Smith went home. She left.")
	it := seg.SegmentUTF8(text)
	prev := int32(0)
	for b := it.Next(); b != textseg.Done; b = it.Next() {
		fmt.Printf("%q\n", text[prev:b])
		prev = b
	}
	// Output:
	// "Dr. Smith went home. "
	// "She left."
}

func ExampleSegmenter_SegmentLatin1() {
	seg, err := textseg.NewSegmenter(textseg.BuiltinRules(), textseg.KindLine)
	if err != nil {
		panic(err)
	}
	text := []byte("wrap here please")
	it := seg.SegmentLatin1(text)
	prev := int32(0)
	for b := it.Next(); b != textseg.Done; b = it.Next() {
		fmt.Printf("%q\n", text[prev:b])
		prev = b
	}
	// Output:
	// "wrap "
	// "here "
	// "please"
}
