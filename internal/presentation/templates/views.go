// Package templates maps view names plus a context object to HTML for the
// server-rendered pages.
package templates

import (
	"html/template"

	"github.com/gin-gonic/gin/render"
)

// partialTemplates are the shared fragments every page pulls in: the page
// shell, the one-time flash notice and the weather widget.
const partialTemplates = `
{{define "partials/head"}}<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Meadowlark Travel</title>
</head>
<body>
<header>
<h1><a href="/">Meadowlark Travel</a></h1>
<nav>
<a href="/about">About</a>
<a href="/tours/hood-river">Hood River Tours</a>
<a href="/newsletter">Newsletter</a>
<a href="/contest/vacation-photo">Photo Contest</a>
<a href="/cart/checkout">Checkout</a>
</nav>
{{template "partials/weather" .}}
</header>
{{template "partials/flash" .}}
{{if .ShowTests}}<div id="qa-tests"{{with .PageTestScript}} data-test-script="{{.}}"{{end}}></div>{{end}}
<main>{{end}}

{{define "partials/flash"}}{{with .Flash}}<div class="alert alert-{{.Type}}"><strong>{{.Intro}}</strong> {{.Message}}</div>{{end}}{{end}}

{{define "partials/weather"}}{{with .Weather}}<div class="weatherWidget">
<ul>{{range .Locations}}
<li><a href="{{.ForecastURL}}"><img src="{{.IconURL}}" alt="{{.Weather}}" width="20" height="20"> {{.Name}}: {{.Weather}}, {{.Temp}}</a></li>{{end}}
</ul>
</div>{{end}}{{end}}

{{define "partials/foot"}}</main>
<footer>&copy; Meadowlark Travel</footer>
</body>
</html>{{end}}
`

// pageTemplates hold one define block per view name used by the handlers.
const pageTemplates = `
{{define "home"}}{{template "partials/head" .}}
<h2>Welcome to Meadowlark Travel</h2>
<p>Your Oregon travel experts. Come visit the most beautiful corner of the Pacific Northwest!</p>
{{template "partials/foot" .}}{{end}}

{{define "about"}}{{template "partials/head" .}}
<h2>About Meadowlark Travel</h2>
<p>Meadowlark Travel has been bringing visitors to Oregon since 2012.</p>
<blockquote class="fortune">{{.Fortune}}</blockquote>
{{template "partials/foot" .}}{{end}}

{{define "jquery-test"}}{{template "partials/head" .}}
<h2>jQuery Test</h2>
<p id="jquery-target">If jQuery loads, this paragraph gets replaced.</p>
{{template "partials/foot" .}}{{end}}

{{define "nursery-rhyme"}}{{template "partials/head" .}}
<h2>Nursery Rhyme</h2>
<p>The <span id="animal"></span> jumped over the <span id="bodyPart"></span> of the <span id="adjective"></span> <span id="noun"></span>.</p>
{{template "partials/foot" .}}{{end}}

{{define "tours/hood-river"}}{{template "partials/head" .}}
<h2>Hood River Tours</h2>
<p>Windsurfing, wineries and waterfalls on the Columbia River Gorge.</p>
<p><a href="/tours/request-group-rate">Request a group rate.</a></p>
{{template "partials/foot" .}}{{end}}

{{define "tours/request-group-rate"}}{{template "partials/head" .}}
<h2>Request Group Rate</h2>
<form action="/process?form=groupRate" method="POST">
<label>Name <input type="text" name="name"></label>
<label>Email <input type="email" name="email"></label>
<button type="submit">Submit</button>
</form>
{{template "partials/foot" .}}{{end}}

{{define "newsletter"}}{{template "partials/head" .}}
<h2>Sign up for our newsletter</h2>
<form action="/newsletter" method="POST">
<input type="hidden" name="_csrf" value="{{.CSRF}}">
<label>Name <input type="text" name="name"></label>
<label>Email <input type="email" name="email"></label>
<button type="submit">Sign Up</button>
</form>
{{template "partials/foot" .}}{{end}}

{{define "newsletter/archive"}}{{template "partials/head" .}}
<h2>Newsletter Archive</h2>
<p>Past editions of the Meadowlark Travel newsletter.</p>
{{template "partials/foot" .}}{{end}}

{{define "contest/vacation-photo"}}{{template "partials/head" .}}
<h2>Vacation Photo Contest</h2>
<form action="/contest/vacation-photo/{{.Year}}/{{.Month}}" method="POST" enctype="multipart/form-data">
<label>Name <input type="text" name="name"></label>
<label>Email <input type="email" name="email"></label>
<label>Photo <input type="file" name="photo"></label>
<button type="submit">Enter</button>
</form>
{{template "partials/foot" .}}{{end}}

{{define "cart-checkout"}}{{template "partials/head" .}}
<h2>Checkout</h2>
<form action="/cart/checkout" method="POST">
<label>Name <input type="text" name="name"></label>
<label>Email <input type="email" name="email"></label>
<button type="submit">Place Order</button>
</form>
{{template "partials/foot" .}}{{end}}

{{define "cart-thank-you"}}{{template "partials/head" .}}
<h2>Thank you for booking with Meadowlark Travel!</h2>
{{with .Cart}}<p>Your reservation number is <strong>{{.Number}}</strong>{{with .Billing}}, and a confirmation has been sent to {{.Email}}{{end}}.</p>{{end}}
{{template "partials/foot" .}}{{end}}

{{define "thank-you"}}{{template "partials/head" .}}
<h2>Thank You!</h2>
<p>We have received your submission.</p>
{{template "partials/foot" .}}{{end}}

{{define "error"}}{{template "partials/head" .}}
<h2>Something went wrong</h2>
<p>We were unable to process your submission. Please try again.</p>
{{template "partials/foot" .}}{{end}}

{{define "404"}}{{template "partials/head" .}}
<h2>404 - Not Found</h2>
<p>Sorry, the page you were looking for does not exist.</p>
{{template "partials/foot" .}}{{end}}

{{define "500"}}{{template "partials/head" .}}
<h2>500 - Server Error</h2>
<p>Something broke on our end. It has been logged and we are on it.</p>
{{template "partials/foot" .}}{{end}}
`

var viewTemplates = template.Must(
	template.Must(template.New("views").Parse(partialTemplates)).Parse(pageTemplates))

// Renderer implements gin's HTMLRender over the compiled view set
type Renderer struct {
	templates *template.Template
}

// NewRenderer creates the view renderer for the gin engine
func NewRenderer() *Renderer {
	return &Renderer{templates: viewTemplates}
}

// Instance returns a render for the named view with the given context
func (r *Renderer) Instance(name string, data any) render.Render {
	return render.HTML{
		Template: r.templates,
		Name:     name,
		Data:     data,
	}
}
