package el

import "github.com/woby-dev/woby/pkg/woby"

// Tag creates an element with an arbitrary tag name, typically a custom
// element such as "counter-button".
func Tag(name string, args ...any) *VNode { return woby.El(name, args...) }

// Document elements

// Html creates a <html> element.
func Html(args ...any) *VNode { return woby.El("html", args...) }

// Head creates a <head> element.
func Head(args ...any) *VNode { return woby.El("head", args...) }

// Body creates a <body> element.
func Body(args ...any) *VNode { return woby.El("body", args...) }

// TitleEl creates a <title> element.
func TitleEl(args ...any) *VNode { return woby.El("title", args...) }

// Meta creates a <meta> element.
func Meta(args ...any) *VNode { return woby.El("meta", args...) }

// LinkEl creates a <link> element.
func LinkEl(args ...any) *VNode { return woby.El("link", args...) }

// Base creates a <base> element.
func Base(args ...any) *VNode { return woby.El("base", args...) }

// StyleEl creates a <style> element.
func StyleEl(args ...any) *VNode { return woby.El("style", args...) }

// Script creates a <script> element.
func Script(args ...any) *VNode { return woby.El("script", args...) }

// Noscript creates a <noscript> element.
func Noscript(args ...any) *VNode { return woby.El("noscript", args...) }

// Template creates a <template> element.
func Template(args ...any) *VNode { return woby.El("template", args...) }

// Slot creates a <slot> element.
func Slot(args ...any) *VNode { return woby.El("slot", args...) }

// Sections elements

// Header creates a <header> element.
func Header(args ...any) *VNode { return woby.El("header", args...) }

// Footer creates a <footer> element.
func Footer(args ...any) *VNode { return woby.El("footer", args...) }

// Main creates a <main> element.
func Main(args ...any) *VNode { return woby.El("main", args...) }

// Nav creates a <nav> element.
func Nav(args ...any) *VNode { return woby.El("nav", args...) }

// Section creates a <section> element.
func Section(args ...any) *VNode { return woby.El("section", args...) }

// Article creates a <article> element.
func Article(args ...any) *VNode { return woby.El("article", args...) }

// Aside creates a <aside> element.
func Aside(args ...any) *VNode { return woby.El("aside", args...) }

// H1 creates a <h1> element.
func H1(args ...any) *VNode { return woby.El("h1", args...) }

// H2 creates a <h2> element.
func H2(args ...any) *VNode { return woby.El("h2", args...) }

// H3 creates a <h3> element.
func H3(args ...any) *VNode { return woby.El("h3", args...) }

// H4 creates a <h4> element.
func H4(args ...any) *VNode { return woby.El("h4", args...) }

// H5 creates a <h5> element.
func H5(args ...any) *VNode { return woby.El("h5", args...) }

// H6 creates a <h6> element.
func H6(args ...any) *VNode { return woby.El("h6", args...) }

// Hgroup creates a <hgroup> element.
func Hgroup(args ...any) *VNode { return woby.El("hgroup", args...) }

// Address creates a <address> element.
func Address(args ...any) *VNode { return woby.El("address", args...) }

// Grouping elements

// Div creates a <div> element.
func Div(args ...any) *VNode { return woby.El("div", args...) }

// P creates a <p> element.
func P(args ...any) *VNode { return woby.El("p", args...) }

// Hr creates a <hr> element.
func Hr(args ...any) *VNode { return woby.El("hr", args...) }

// Pre creates a <pre> element.
func Pre(args ...any) *VNode { return woby.El("pre", args...) }

// Blockquote creates a <blockquote> element.
func Blockquote(args ...any) *VNode { return woby.El("blockquote", args...) }

// Ol creates a <ol> element.
func Ol(args ...any) *VNode { return woby.El("ol", args...) }

// Ul creates a <ul> element.
func Ul(args ...any) *VNode { return woby.El("ul", args...) }

// Li creates a <li> element.
func Li(args ...any) *VNode { return woby.El("li", args...) }

// Dl creates a <dl> element.
func Dl(args ...any) *VNode { return woby.El("dl", args...) }

// Dt creates a <dt> element.
func Dt(args ...any) *VNode { return woby.El("dt", args...) }

// Dd creates a <dd> element.
func Dd(args ...any) *VNode { return woby.El("dd", args...) }

// Figure creates a <figure> element.
func Figure(args ...any) *VNode { return woby.El("figure", args...) }

// Figcaption creates a <figcaption> element.
func Figcaption(args ...any) *VNode { return woby.El("figcaption", args...) }

// Text-level elements

// A creates a <a> element.
func A(args ...any) *VNode { return woby.El("a", args...) }

// Em creates a <em> element.
func Em(args ...any) *VNode { return woby.El("em", args...) }

// Strong creates a <strong> element.
func Strong(args ...any) *VNode { return woby.El("strong", args...) }

// Small creates a <small> element.
func Small(args ...any) *VNode { return woby.El("small", args...) }

// S creates a <s> element.
func S(args ...any) *VNode { return woby.El("s", args...) }

// Cite creates a <cite> element.
func Cite(args ...any) *VNode { return woby.El("cite", args...) }

// Q creates a <q> element.
func Q(args ...any) *VNode { return woby.El("q", args...) }

// Dfn creates a <dfn> element.
func Dfn(args ...any) *VNode { return woby.El("dfn", args...) }

// Abbr creates a <abbr> element.
func Abbr(args ...any) *VNode { return woby.El("abbr", args...) }

// Code creates a <code> element.
func Code(args ...any) *VNode { return woby.El("code", args...) }

// Var creates a <var> element.
func Var(args ...any) *VNode { return woby.El("var", args...) }

// Samp creates a <samp> element.
func Samp(args ...any) *VNode { return woby.El("samp", args...) }

// Kbd creates a <kbd> element.
func Kbd(args ...any) *VNode { return woby.El("kbd", args...) }

// Sub creates a <sub> element.
func Sub(args ...any) *VNode { return woby.El("sub", args...) }

// Sup creates a <sup> element.
func Sup(args ...any) *VNode { return woby.El("sup", args...) }

// I creates a <i> element.
func I(args ...any) *VNode { return woby.El("i", args...) }

// B creates a <b> element.
func B(args ...any) *VNode { return woby.El("b", args...) }

// U creates a <u> element.
func U(args ...any) *VNode { return woby.El("u", args...) }

// Mark creates a <mark> element.
func Mark(args ...any) *VNode { return woby.El("mark", args...) }

// Span creates a <span> element.
func Span(args ...any) *VNode { return woby.El("span", args...) }

// Br creates a <br> element.
func Br(args ...any) *VNode { return woby.El("br", args...) }

// Wbr creates a <wbr> element.
func Wbr(args ...any) *VNode { return woby.El("wbr", args...) }

// Embedded elements

// Img creates a <img> element.
func Img(args ...any) *VNode { return woby.El("img", args...) }

// Iframe creates a <iframe> element.
func Iframe(args ...any) *VNode { return woby.El("iframe", args...) }

// Video creates a <video> element.
func Video(args ...any) *VNode { return woby.El("video", args...) }

// Audio creates a <audio> element.
func Audio(args ...any) *VNode { return woby.El("audio", args...) }

// Source creates a <source> element.
func Source(args ...any) *VNode { return woby.El("source", args...) }

// Track creates a <track> element.
func Track(args ...any) *VNode { return woby.El("track", args...) }

// Canvas creates a <canvas> element.
func Canvas(args ...any) *VNode { return woby.El("canvas", args...) }

// Svg creates a <svg> element.
func Svg(args ...any) *VNode { return woby.El("svg", args...) }

// Tables elements

// Table creates a <table> element.
func Table(args ...any) *VNode { return woby.El("table", args...) }

// Caption creates a <caption> element.
func Caption(args ...any) *VNode { return woby.El("caption", args...) }

// Thead creates a <thead> element.
func Thead(args ...any) *VNode { return woby.El("thead", args...) }

// Tbody creates a <tbody> element.
func Tbody(args ...any) *VNode { return woby.El("tbody", args...) }

// Tfoot creates a <tfoot> element.
func Tfoot(args ...any) *VNode { return woby.El("tfoot", args...) }

// Tr creates a <tr> element.
func Tr(args ...any) *VNode { return woby.El("tr", args...) }

// Th creates a <th> element.
func Th(args ...any) *VNode { return woby.El("th", args...) }

// Td creates a <td> element.
func Td(args ...any) *VNode { return woby.El("td", args...) }

// Col creates a <col> element.
func Col(args ...any) *VNode { return woby.El("col", args...) }

// Colgroup creates a <colgroup> element.
func Colgroup(args ...any) *VNode { return woby.El("colgroup", args...) }

// Forms elements

// Form creates a <form> element.
func Form(args ...any) *VNode { return woby.El("form", args...) }

// Label creates a <label> element.
func Label(args ...any) *VNode { return woby.El("label", args...) }

// Input creates a <input> element.
func Input(args ...any) *VNode { return woby.El("input", args...) }

// Button creates a <button> element.
func Button(args ...any) *VNode { return woby.El("button", args...) }

// Select creates a <select> element.
func Select(args ...any) *VNode { return woby.El("select", args...) }

// Option creates a <option> element.
func Option(args ...any) *VNode { return woby.El("option", args...) }

// Optgroup creates a <optgroup> element.
func Optgroup(args ...any) *VNode { return woby.El("optgroup", args...) }

// Textarea creates a <textarea> element.
func Textarea(args ...any) *VNode { return woby.El("textarea", args...) }

// Output creates a <output> element.
func Output(args ...any) *VNode { return woby.El("output", args...) }

// Progress creates a <progress> element.
func Progress(args ...any) *VNode { return woby.El("progress", args...) }

// Meter creates a <meter> element.
func Meter(args ...any) *VNode { return woby.El("meter", args...) }

// Fieldset creates a <fieldset> element.
func Fieldset(args ...any) *VNode { return woby.El("fieldset", args...) }

// Legend creates a <legend> element.
func Legend(args ...any) *VNode { return woby.El("legend", args...) }

// Interactive elements

// Details creates a <details> element.
func Details(args ...any) *VNode { return woby.El("details", args...) }

// Summary creates a <summary> element.
func Summary(args ...any) *VNode { return woby.El("summary", args...) }

// Dialog creates a <dialog> element.
func Dialog(args ...any) *VNode { return woby.El("dialog", args...) }
