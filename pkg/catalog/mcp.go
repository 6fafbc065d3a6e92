package catalog

// MCPPromptsRS returns the planned file layout of mcp-prompts-rs, a Rust MCP
// prompt server with ESP32 firmware support. A fresh copy is returned on
// every call.
func MCPPromptsRS() *Catalog {
	entries := make([]Entry, len(mcpPromptsRS))
	copy(entries, mcpPromptsRS)
	return &Catalog{Name: "mcp-prompts-rs", Entries: entries}
}

var mcpPromptsRS = []Entry{
	{"Cargo.toml", "Hlavní konfigurace projektu s ESP32 features", Critical, KindConfig},
	{".cargo/config.toml", "Rust toolchain konfigurace pro ESP32", Critical, KindConfig},
	{"src/main.rs", "Desktop/cloud entry point", High, KindSource},
	{"src/lib.rs", "Společná logika, export všech modulů", High, KindSource},
	{"src/embedded/main.rs", "ESP32 entry point (#![no_std])", Critical, KindSource},
	{"src/embedded/build.rs", "Compile-time konfigurace pro ESP32", High, KindSource},
	{"src/api/mod.rs", "API modul export", Medium, KindSource},
	{"src/api/http.rs", "REST API pro desktop", Medium, KindSource},
	{"src/api/websocket.rs", "WebSocket server (desktop + ESP32)", Critical, KindSource},
	{"src/api/mcp.rs", "MCP protocol implementation", Critical, KindSource},
	{"src/storage/mod.rs", "Storage backends export", High, KindSource},
	{"src/storage/fs.rs", "File system storage (desktop)", Medium, KindSource},
	{"src/storage/postgres.rs", "PostgreSQL storage (desktop)", Low, KindSource},
	{"src/storage/littlefs.rs", "LittleFS storage pro ESP32", Critical, KindSource},
	{"src/model/mod.rs", "Data models export", High, KindSource},
	{"src/model/prompt.rs", "Prompt struktury a logika", High, KindSource},
	{"src/model/schema.rs", "JSON schémata a validace", Medium, KindSource},
	{"src/utils/mod.rs", "Utility funkce export", Medium, KindSource},
	{"src/utils/templating.rs", "Template engine (Handlebars/vlastní)", Medium, KindSource},
	{"src/utils/serde_ext.rs", "Serde rozšíření", Low, KindSource},
	{"src/utils/logger.rs", "Logging abstrakce", Low, KindSource},
	{".github/workflows/ci.yml", "Continuous Integration", High, KindCI},
	{".github/workflows/esp-build.yml", "ESP32 cross-compilation", Critical, KindCI},
	{".github/workflows/release.yml", "Semantic release workflow", Medium, KindCI},
	{"scripts/flash_esp32.sh", "ESP32 flash skript", Critical, KindScript},
	{"scripts/export_catalog.ts", "Export JSON z mcp-prompts-catalog", High, KindScript},
	{"scripts/build_esp32.sh", "Build script pro ESP32", Critical, KindScript},
	{"prompts/system/memory_cleanup.json", "Příklad system promptu", Low, KindData},
	{"prompts/iot/garage_door.json", "Příklad IoT promptu", Low, KindData},
	{"build.rs", "Build-time konfigurace a feature gates", High, KindConfig},
	{"tests/integration_http.rs", "HTTP API testy", Medium, KindTest},
	{"tests/integration_ws.rs", "WebSocket testy", High, KindTest},
	{"tests/storage_test.rs", "Storage backends testy", Medium, KindTest},
	{"docker/Dockerfile", "Docker kontejner pro desktop", Low, KindConfig},
	{"docker/entrypoint.sh", "Docker entrypoint", Low, KindScript},
	{".env.example", "Env proměnné template", Medium, KindConfig},
	{"README.md", "Dokumentace projektu", Medium, KindDocs},
	{"CHANGELOG.md", "História změn", Low, KindDocs},
}
