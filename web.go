package main

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const defaultPort = "5000"

const landingPage = `<!DOCTYPE html>
<html>
<head>
    <title>Timestamp Calculator Bot</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            max-width: 600px;
            margin: 100px auto;
            padding: 20px;
            text-align: center;
            background: #f5f5f5;
        }
        h1 { color: #5865F2; }
        .links { margin-top: 30px; }
        a {
            display: inline-block;
            margin: 10px;
            padding: 12px 24px;
            background: #5865F2;
            color: white;
            text-decoration: none;
            border-radius: 5px;
        }
        a:hover { background: #4752C4; }
    </style>
</head>
<body>
    <h1>⏰ Timestamp Calculator Bot</h1>
    <p>A Discord bot for calculating timestamps from date/time components</p>
    <div class="links">
        <a href="/terms.html">Terms of Service</a>
        <a href="/privacy.html">Privacy Policy</a>
    </div>
</body>
</html>
`

// runWebServer serves the landing page and the legal notices Discord
// requires for a public bot. It runs alongside the gateway connection;
// losing it does not affect command handling.
func runWebServer(port string) {
	if port == "" {
		port = defaultPort
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	e.GET("/", func(c echo.Context) error {
		return c.HTML(http.StatusOK, landingPage)
	})
	e.Static("/", "public")

	log.Printf("Web server running on port %s", port)
	if err := e.Start(":" + port); err != nil {
		log.Printf("Web server stopped: %v", err)
	}
}
