package report

// ReportTemplate is a single-page HTML summary of one clean
const ReportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Data Cleaning Report - {{.Sheet}}</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
            background: #f5f7fa;
            color: #2c3e50;
            line-height: 1.6;
            margin: 0;
        }

        .container {
            max-width: 900px;
            margin: 0 auto;
            padding: 20px;
        }

        header {
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            color: white;
            padding: 30px 20px;
            margin-bottom: 30px;
            border-radius: 8px;
        }

        .summary {
            background: white;
            padding: 20px;
            border-radius: 8px;
            margin-bottom: 30px;
            box-shadow: 0 2px 4px rgba(0, 0, 0, 0.05);
        }

        .stats {
            display: flex;
            gap: 20px;
        }

        .stat {
            flex: 1;
            text-align: center;
            padding: 15px;
            border-radius: 6px;
            background: #f0f2ff;
        }

        .stat .value {
            font-size: 2em;
            font-weight: bold;
            color: #667eea;
        }

        .stat.removed .value {
            color: #d32f2f;
        }

        code {
            background: #eef0f4;
            padding: 2px 6px;
            border-radius: 4px;
        }
    </style>
</head>
<body>
    <div class="container">
        <header>
            <h1>Data Cleaning Report</h1>
            <p>{{date .}}</p>
        </header>

        <div class="summary">
            <h2>Files</h2>
            <p>Input: <code>{{.Input}}</code> (sheet <code>{{.Sheet}}</code>)</p>
            <p>Output: <code>{{.Output}}</code></p>
            <p>Rows with a missing or blank <code>{{.Column}}</code> value were removed.</p>
        </div>

        <div class="summary">
            <h2>Rows</h2>
            <div class="stats">
                <div class="stat"><div class="value">{{count .InitialRows}}</div>Loaded</div>
                <div class="stat removed"><div class="value">{{count .RemovedRows}}</div>Removed</div>
                <div class="stat"><div class="value">{{count .FinalRows}}</div>Remaining</div>
            </div>
        </div>
        {{if .RemovedRowNumbers}}
        <div class="summary">
            <h2>Removed Sheet Rows</h2>
            <p>{{range $i, $n := .RemovedRowNumbers}}{{if $i}}, {{end}}{{$n}}{{end}}</p>
        </div>
        {{end}}
    </div>
</body>
</html>
`
