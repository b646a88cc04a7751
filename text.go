package main

var (
	HeroIntro = `I craft fast, accessible web applications end to end, from REST APIs and
real-time services to polished React interfaces.`

	// AboutMe is markdown.
	AboutMe = `I'm a full stack developer from **Pune, India** who enjoys turning rough ideas
into products people actually use. Most of my work lives in the MERN stack and Next.js,
with a side of Python and Django when a project calls for it.

I care about clean APIs, responsive layouts and shipping things that hold up in
production. Outside client work I keep a steady stream of small projects going to try
new tools and sharpen the fundamentals.`
)

// pageCopy is the long-form text the home page renders, keyed by section.
func pageCopy() map[string]string {
	return map[string]string{
		"hero":  HeroIntro,
		"about": AboutMe,
	}
}
