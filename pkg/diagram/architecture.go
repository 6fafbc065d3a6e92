package diagram

// Category colors of the mcp-prompts-rs architecture.
const (
	ColorDesktop = "#1FB8CD"
	ColorESP32   = "#FFC185"
	ColorShared  = "#5D878F"
	ColorBuild   = "#944454"
	ColorClients = "#D2BA4C"
)

// Architecture returns the mcp-prompts-rs architecture diagram: the desktop
// and ESP32 stacks, the modules they share, the firmware build pipeline and
// the clients talking to the MCP server.
func Architecture() *Diagram {
	return &Diagram{
		Title:  "mcp-prompts-rs Architecture",
		XRange: Range{Min: -0.5, Max: 6},
		YRange: Range{Min: 0, Max: 10},
		Categories: []Category{
			{Name: "Desktop/Cloud", Color: ColorDesktop, Components: []Component{
				{"main.rs", Point{1, 7}},
				{"HTTP API", Point{2, 7}},
				{"WebSocket", Point{3, 7}},
				{"PostgreSQL", Point{4, 7}},
				{"FileSystem", Point{5, 7}},
			}},
			{Name: "ESP32", Color: ColorESP32, Components: []Component{
				{"embed/main.rs", Point{1, 5}},
				{"WiFi Init", Point{2, 5}},
				{"WS Server", Point{3, 5}},
				{"LittleFS", Point{4, 5}},
				{"Embed Prompts", Point{5, 5}},
			}},
			{Name: "Shared", Color: ColorShared, Components: []Component{
				{"mcp.rs", Point{1.5, 3}},
				{"prompt.rs", Point{3, 3}},
				{"websocket.rs", Point{4.5, 3}},
			}},
			{Name: "Build", Color: ColorBuild, Components: []Component{
				{"export_cat.ts", Point{1, 1}},
				{"build_esp32.sh", Point{2, 1}},
				{"esp-build.yml", Point{3, 1}},
				{"ESP32 Binary", Point{4, 1}},
			}},
			{Name: "Clients", Color: ColorClients, Components: []Component{
				{"Claude Desktop", Point{0.5, 9}},
				{"Android", Point{1.5, 9}},
				{"PC", Point{2.5, 9}},
				{"Port 9000", Point{3.5, 9}},
				{"MCP Server", Point{4.5, 9}},
			}},
		},
		Connections: []Connection{
			// desktop request path
			{Point{1, 7}, Point{2, 7}, ColorDesktop},
			{Point{2, 7}, Point{3, 7}, ColorDesktop},
			{Point{3, 7}, Point{4, 7}, ColorDesktop},
			{Point{3, 7}, Point{5, 7}, ColorDesktop},

			// firmware request path
			{Point{1, 5}, Point{2, 5}, ColorESP32},
			{Point{2, 5}, Point{3, 5}, ColorESP32},
			{Point{3, 5}, Point{4, 5}, ColorESP32},
			{Point{3, 5}, Point{5, 5}, ColorESP32},

			{Point{1, 1}, Point{2, 1}, ColorBuild},
			{Point{2, 1}, Point{3, 1}, ColorBuild},
			{Point{3, 1}, Point{4, 1}, ColorBuild},

			{Point{0.5, 9}, Point{3.5, 9}, ColorClients},
			{Point{1.5, 9}, Point{3.5, 9}, ColorClients},
			{Point{2.5, 9}, Point{3.5, 9}, ColorClients},
			{Point{3.5, 9}, Point{4.5, 9}, ColorClients},

			// shared modules feed both entry points
			{Point{1.5, 3}, Point{1, 7}, ColorShared},
			{Point{1.5, 3}, Point{1, 5}, ColorShared},
			{Point{3, 3}, Point{3, 7}, ColorShared},
			{Point{3, 3}, Point{3, 5}, ColorShared},
			{Point{4.5, 3}, Point{3, 7}, ColorShared},
			{Point{4.5, 3}, Point{3, 5}, ColorShared},
		},
		Arrows: []Arrow{
			{Point{1.5, 7}, ColorDesktop},
			{Point{2.5, 7}, ColorDesktop},
			{Point{3.3, 6.8}, ColorDesktop},
			{Point{3.3, 7.2}, ColorDesktop},

			{Point{1.5, 5}, ColorESP32},
			{Point{2.5, 5}, ColorESP32},
			{Point{3.3, 4.8}, ColorESP32},
			{Point{3.3, 5.2}, ColorESP32},

			{Point{1.5, 1}, ColorBuild},
			{Point{2.5, 1}, ColorBuild},
			{Point{3.5, 1}, ColorBuild},

			{Point{2, 9}, ColorClients},
			{Point{4, 9}, ColorClients},

			{Point{1.5, 5}, ColorShared},
			{Point{1.5, 4}, ColorShared},
			{Point{3, 5}, ColorShared},
			{Point{3, 4}, ColorShared},
		},
	}
}
