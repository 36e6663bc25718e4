package report

import "html/template"

var tmpl = template.Must(template.New("index").Parse(indexTemplate))

const indexTemplate = `<html><head><title>Font Index</title>
<link href="https://unpkg.com/boxicons@2.1.4/css/boxicons.min.css" rel="stylesheet">
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ddd; padding: 8px; text-align: left; }
th { background-color: #f2f2f2; cursor: pointer; }
img { max-width: 100%; height: auto; }
#readme { background-color: #f9f9f9; border: 1px solid #eee; padding: 1em; margin-bottom: 2em; }
.font-name-col, .filename-col { max-width: 150px; overflow: hidden; text-overflow: ellipsis; white-space: nowrap; }
.render-col { width: auto; }
</style>
</head><body>
<h1>Font Index</h1>
<p>Total fonts processed: {{.Total}}</p>
<p>Fonts with quality issues (&#10060;): {{.Issues}}</p>
{{if .Readme}}<div id="readme">{{.Readme}}</div>
{{end}}<p>The <b>Quality</b> column indicates whether a font has passed a series of quality checks. A green checkmark (&#9989;) indicates that the font has passed all checks. A red 'x' (&#10060;) indicates that the font may have issues, such as missing characters or inconsistent kerning, which can cause problems when rendering text.</p>
<p>Rendering the text: "{{.Text}}"</p>
<table id="fontTable">
<thead><tr><th class="font-name-col" onclick="sortTable(0)">Font Name</th><th class="filename-col" onclick="sortTable(1)">Filename</th><th onclick="sortTable(2)">Style</th><th onclick="sortTable(3)">Quality</th><th class="render-col">Render</th><th></th></tr></thead>
<tbody>
{{range .Rows}}<tr>
<td class="font-name-col">{{.FullName}}</td>
<td class="filename-col">{{.FileName}}</td>
<td>{{.Style}}</td>
{{if .Quality.OK}}<td>&#9989;</td>{{else}}<td title="{{.Quality.Reason}}">&#10060;</td>{{end}}
<td class="render-col"><img src="{{.ImagePath}}" alt="Render of {{.FullName}}"></td>
<td><a href="{{.FontPath}}"><i class='bx bx-download'></i></a></td>
</tr>
{{end}}</tbody>
</table>
<script>
const sortDirections = {};

function sortTable(n) {
    const table = document.getElementById("fontTable");
    const tbody = table.tBodies[0];
    const rows = Array.from(tbody.rows);

    const dir = sortDirections[n] === 'asc' ? 'desc' : 'asc';
    sortDirections[n] = dir;

    rows.sort((a, b) => {
        const x = a.cells[n].innerText.toLowerCase();
        const y = b.cells[n].innerText.toLowerCase();

        if (x < y) {
            return dir === 'asc' ? -1 : 1;
        }
        if (x > y) {
            return dir === 'asc' ? 1 : -1;
        }
        return 0;
    });

    rows.forEach(row => tbody.appendChild(row));
}
</script>
</body></html>
`
