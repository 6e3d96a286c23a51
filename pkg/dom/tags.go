package dom

// Document structure

func Header() Element  { return New("header") }
func Footer() Element  { return New("footer") }
func Main() Element    { return New("main") }
func Nav() Element     { return New("nav") }
func Section() Element { return New("section") }
func Article() Element { return New("article") }
func Aside() Element   { return New("aside") }
func H1() Element      { return New("h1") }
func H2() Element      { return New("h2") }
func H3() Element      { return New("h3") }
func H4() Element      { return New("h4") }
func H5() Element      { return New("h5") }
func H6() Element      { return New("h6") }

// Text content

func Div() Element        { return New("div") }
func P() Element          { return New("p") }
func Span() Element       { return New("span") }
func Pre() Element        { return New("pre") }
func Blockquote() Element { return New("blockquote") }
func Ul() Element         { return New("ul") }
func Ol() Element         { return New("ol") }
func Li() Element         { return New("li") }
func Hr() Element         { return New("hr") }
func Br() Element         { return New("br") }
func A() Element          { return New("a") }
func Strong() Element     { return New("strong") }
func Em() Element         { return New("em") }
func Code() Element       { return New("code") }
func Small() Element      { return New("small") }

// Forms

func Form() Element     { return New("form") }
func Input() Element    { return New("input") }
func Textarea() Element { return New("textarea") }
func Select() Element   { return New("select") }
func Option() Element   { return New("option") }
func Button() Element   { return New("button") }
func Label() Element    { return New("label") }
func Fieldset() Element { return New("fieldset") }
func Legend() Element   { return New("legend") }

// Tables

func Table() Element { return New("table") }
func Thead() Element { return New("thead") }
func Tbody() Element { return New("tbody") }
func Tr() Element    { return New("tr") }
func Th() Element    { return New("th") }
func Td() Element    { return New("td") }

// Media

func Img() Element    { return New("img") }
func Canvas() Element { return New("canvas") }

// Svg creates an <svg> element in the SVG namespace; the namespace
// applies to the whole compiled subtree.
func Svg() Element { return New("svg").SetNamespace(SVGNamespace) }

// Math creates a <math> element in the MathML namespace.
func Math() Element { return New("math").SetNamespace(MathMLNamespace) }
