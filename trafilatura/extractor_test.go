package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/gtmagent"
	"github.com/fwojciec/gtmagent/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ gtmagent.Extractor = (*trafilatura.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title from meta tags", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Business Internet - e&amp; UAE</title>
<meta property="og:title" content="Business Internet Plans">
</head>
<body>
<nav>Personal | Business | Enterprise</nav>
<main>
<h1>Business Internet</h1>
<p>Fibre plans for small offices with speeds up to 1 Gbps and a static IP included.</p>
</main>
<footer>Footer links</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.NotEmpty(t, result.Title)
	})

	t.Run("extracts product copy", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Cloud Backup</title></head>
<body>
<nav><a href="/">Home</a><a href="/business">Business</a></nav>
<article>
<h1>Cloud Backup for SMEs</h1>
<p>Protect customer records with encrypted daily backups hosted in UAE data centres.</p>
<p>Plans start at AED 99 per month with 24/7 local support.</p>
</article>
<aside>Chat with sales now</aside>
<footer>Copyright 2025</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.Text, "encrypted daily backups")
		assert.NotContains(t, result.Text, "Chat with sales now")
	})

	t.Run("removes navigation boilerplate", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Offers</title></head>
<body>
<nav class="main-nav">
<ul>
<li><a href="/">Home</a></li>
<li><a href="/about">About</a></li>
<li><a href="/offers">Offers</a></li>
</ul>
</nav>
<main>
<h1>Ramadan Offers</h1>
<p>Get double data on every postpaid business line signed before the end of the month.</p>
</main>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.Text, "double data on every postpaid business line")
		assert.NotContains(t, result.Text, "About")
	})

	t.Run("removes footer boilerplate", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Press</title></head>
<body>
<article>
<h1>Operator Launches 5G Fixed Wireless</h1>
<p>The new service brings home broadband to villas outside the fibre footprint.</p>
</article>
<footer>
<p>Copyright 2025 Example Telecom</p>
<nav>Privacy | Terms | Contact</nav>
</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.Text, "villas outside the fibre footprint")
		assert.NotContains(t, result.Text, "Copyright 2025 Example Telecom")
	})

	t.Run("handles landing pages with promo banners and menus", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>SD-WAN | Acme Networks</title>
<meta property="og:title" content="SD-WAN">
</head>
<body>
<nav class="navbar">
<a href="/">Acme Networks</a>
<a href="/solutions">Solutions</a>
<a href="/pricing">Pricing</a>
</nav>
<div class="mega-menu">
<ul>
<li><a href="/solutions/sd-wan">SD-WAN</a></li>
<li><a href="/solutions/sase">SASE</a></li>
</ul>
</div>
<main class="landing">
<article>
<h1>Managed SD-WAN</h1>
<p>Connect every branch over one secure overlay managed by our Dubai operations centre.</p>
<h2>Why retailers choose us</h2>
<p>Point-of-sale traffic gets priority so checkouts keep running during peak season.</p>
</article>
</main>
<footer class="footer">
<p>Talk to an expert</p>
</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.Text, "one secure overlay managed by our Dubai operations centre")
		assert.Contains(t, result.Text, "checkouts keep running during peak season")
	})

	t.Run("handles nested main and article", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Home - Gulf Fintech</title>
</head>
<body>
<header>
<nav class="site-header">
<a href=".">Gulf Fintech</a>
</nav>
</header>
<nav class="site-nav">
<ul>
<li><a href=".">Home</a></li>
<li><a href="careers/">Careers</a></li>
</ul>
</nav>
<main>
<article class="hero">
<h1>Payments for Gulf Merchants</h1>
<p>Accept cards and wallets in one checkout built for regional merchants.</p>
<h2>Products</h2>
<ul>
<li>Payment links for social sellers.</li>
<li>Invoicing with automatic VAT.</li>
</ul>
</article>
</main>
<footer class="site-footer">
<p>Licensed by the central bank</p>
</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.Text, "Accept cards and wallets in one checkout built for regional merchants.")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		_, err := ext.Extract("")

		require.Error(t, err)
		assert.Equal(t, gtmagent.EINVALID, gtmagent.ErrorCode(err))
	})

	t.Run("handles minimal valid HTML", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><p>Contact our enterprise team</p></body></html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.Text, "Contact our enterprise team")
	})
}
