package handlers

// Landing page served on /. Purely presentational; the interactive docs on
// /public/openapi.json cover the full surface.
const landingPageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>YouTube Music API</title>
<style>
  :root { color-scheme: dark; }
  body { margin: 0; font-family: ui-sans-serif, system-ui, sans-serif; background: #0f0f0f; color: #eee; }
  main { max-width: 720px; margin: 0 auto; padding: 48px 24px; }
  h1 { font-size: 2rem; margin-bottom: .25rem; }
  h1 span { color: #f33; }
  p.sub { color: #aaa; margin-top: 0; }
  code, pre { background: #1c1c1c; border-radius: 6px; font-family: ui-monospace, monospace; }
  code { padding: 2px 6px; }
  pre { padding: 16px; overflow-x: auto; }
  a { color: #7ab8ff; }
  .endpoint { border: 1px solid #2a2a2a; border-radius: 8px; padding: 16px 20px; margin: 16px 0; }
  .endpoint .method { color: #6fcf97; font-weight: 600; margin-right: 8px; }
</style>
</head>
<body>
<main>
  <h1><span>&#9835;</span> YouTube Music API</h1>
  <p class="sub">Search YouTube Music and get lyrics &mdash; clean, standardized JSON.</p>

  <div class="endpoint">
    <p><span class="method">GET</span><code>/search?q=&lt;query&gt;&amp;type=&lt;type&gt;</code></p>
    <p>Search across songs, videos, artists, albums, podcasts, episodes, profiles
    and community playlists. <code>type</code> defaults to <code>all</code>.</p>
    <pre>/search?q=espresso+sabrina+carpenter&amp;type=songs</pre>
  </div>

  <div class="endpoint">
    <p><span class="method">GET</span><code>/lyrics/:videoId</code></p>
    <p>Lyrics for a video, when YouTube Music has them.</p>
    <pre>/lyrics/kIft-LUHHVA</pre>
  </div>

  <p>Machine-readable docs: <a href="/api/info">/api/info</a> &middot;
  <a href="/public/openapi.json">/public/openapi.json</a></p>
</main>
</body>
</html>
`
