// Package tasktool defines the llmtools-go tool specs for the Nash
// tool set and binds them to a Runtime. Every tool returns a single
// human-readable report string; failures are rendered into the
// report, never surfaced as tool errors.
package tasktool

import llmtoolsgoSpec "github.com/flexigpt/llmtools-go/spec"

const (
	FuncIDTasksSave      llmtoolsgoSpec.FuncID = "github.com/nash-app/nash-mcp/tasktool.SaveTask"
	FuncIDTasksList      llmtoolsgoSpec.FuncID = "github.com/nash-app/nash-mcp/tasktool.ListTasks"
	FuncIDTasksGet       llmtoolsgoSpec.FuncID = "github.com/nash-app/nash-mcp/tasktool.GetTask"
	FuncIDTasksDetails   llmtoolsgoSpec.FuncID = "github.com/nash-app/nash-mcp/tasktool.TaskDetails"
	FuncIDTasksDelete    llmtoolsgoSpec.FuncID = "github.com/nash-app/nash-mcp/tasktool.DeleteTask"
	FuncIDTasksRunScript llmtoolsgoSpec.FuncID = "github.com/nash-app/nash-mcp/tasktool.RunScript"
	FuncIDExecCommand    llmtoolsgoSpec.FuncID = "github.com/nash-app/nash-mcp/tasktool.ExecCommand"
	FuncIDExecPython     llmtoolsgoSpec.FuncID = "github.com/nash-app/nash-mcp/tasktool.ExecPython"
	FuncIDExecPackages   llmtoolsgoSpec.FuncID = "github.com/nash-app/nash-mcp/tasktool.ExecPackages"
	FuncIDWebFetch       llmtoolsgoSpec.FuncID = "github.com/nash-app/nash-mcp/tasktool.WebFetch"
	FuncIDSecretsList    llmtoolsgoSpec.FuncID = "github.com/nash-app/nash-mcp/tasktool.ListSecrets"
	FuncIDHelp           llmtoolsgoSpec.FuncID = "github.com/nash-app/nash-mcp/tasktool.Help"
)

const scriptSchema = `{
	  "type":"object",
	  "properties":{
	    "name":{"type":"string"},
	    "type":{"type":"string","enum":["python","command"]},
	    "code":{"type":"string"},
	    "description":{"type":"string"}
	  },
	  "required":["name","type","code"],
	  "additionalProperties":false
	}`

func Tools() []llmtoolsgoSpec.Tool {
	return []llmtoolsgoSpec.Tool{
		TasksSaveTool(),
		TasksListTool(),
		TasksGetTool(),
		TasksDetailsTool(),
		TasksDeleteTool(),
		TasksRunScriptTool(),
		ExecCommandTool(),
		ExecPythonTool(),
		ExecPackagesTool(),
		WebFetchTool(),
		SecretsListTool(),
		HelpTool(),
	}
}

func TasksSaveTool() llmtoolsgoSpec.Tool {
	return llmtoolsgoSpec.Tool{
		SchemaVersion: llmtoolsgoSpec.SchemaVersion,
		ID:            "019c52aa-7d10-7bd0-9e41-52b6c11d0401",
		Slug:          "tasks.save",
		Version:       "v1.0.0",
		DisplayName:   "Tasks Save",
		Description:   "Save a reusable task with a prompt and optional executable scripts for later recall.",
		Tags:          []string{"tasks"},
		ArgSchema: llmtoolsgoSpec.JSONSchema(`{
		  "$schema":"http://json-schema.org/draft-07/schema#",
		  "type":"object",
		  "properties":{
		    "name":{"type":"string","description":"Short, descriptive task name (used to recall it later)."},
		    "prompt":{"type":"string","description":"Complete instructions and explanations for the task."},
		    "scripts":{"type":"array","items":` + scriptSchema + `}
		  },
		  "required":["name","prompt"],
		  "additionalProperties":false
		}`),
		GoImpl:     llmtoolsgoSpec.GoToolImpl{FuncID: FuncIDTasksSave},
		CreatedAt:  llmtoolsgoSpec.SchemaStartTime,
		ModifiedAt: llmtoolsgoSpec.SchemaStartTime,
	}
}

func TasksListTool() llmtoolsgoSpec.Tool {
	return llmtoolsgoSpec.Tool{
		SchemaVersion: llmtoolsgoSpec.SchemaVersion,
		ID:            "019c52aa-7d10-7bd0-9e41-52b6c11d0402",
		Slug:          "tasks.list",
		Version:       "v1.0.0",
		DisplayName:   "Tasks List",
		Description:   "List all saved tasks and their scripts.",
		Tags:          []string{"tasks"},
		ArgSchema: llmtoolsgoSpec.JSONSchema(`{
		  "$schema":"http://json-schema.org/draft-07/schema#",
		  "type":"object",
		  "properties":{},
		  "additionalProperties":false
		}`),
		GoImpl:     llmtoolsgoSpec.GoToolImpl{FuncID: FuncIDTasksList},
		CreatedAt:  llmtoolsgoSpec.SchemaStartTime,
		ModifiedAt: llmtoolsgoSpec.SchemaStartTime,
	}
}

func TasksGetTool() llmtoolsgoSpec.Tool {
	return llmtoolsgoSpec.Tool{
		SchemaVersion: llmtoolsgoSpec.SchemaVersion,
		ID:            "019c52aa-7d10-7bd0-9e41-52b6c11d0403",
		Slug:          "tasks.get",
		Version:       "v1.0.0",
		DisplayName:   "Tasks Get",
		Description:   "Retrieve a saved task's prompt and script summaries (no code).",
		Tags:          []string{"tasks"},
		ArgSchema: llmtoolsgoSpec.JSONSchema(`{
		  "$schema":"http://json-schema.org/draft-07/schema#",
		  "type":"object",
		  "properties":{
		    "name":{"type":"string","description":"Exact task name (case-sensitive)."}
		  },
		  "required":["name"],
		  "additionalProperties":false
		}`),
		GoImpl:     llmtoolsgoSpec.GoToolImpl{FuncID: FuncIDTasksGet},
		CreatedAt:  llmtoolsgoSpec.SchemaStartTime,
		ModifiedAt: llmtoolsgoSpec.SchemaStartTime,
	}
}

func TasksDetailsTool() llmtoolsgoSpec.Tool {
	return llmtoolsgoSpec.Tool{
		SchemaVersion: llmtoolsgoSpec.SchemaVersion,
		ID:            "019c52aa-7d10-7bd0-9e41-52b6c11d0404",
		Slug:          "tasks.details",
		Version:       "v1.0.0",
		DisplayName:   "Tasks Details",
		Description:   "View a saved task including the full code of all its scripts, for audit before execution.",
		Tags:          []string{"tasks"},
		ArgSchema: llmtoolsgoSpec.JSONSchema(`{
		  "$schema":"http://json-schema.org/draft-07/schema#",
		  "type":"object",
		  "properties":{
		    "name":{"type":"string","description":"Exact task name (case-sensitive)."}
		  },
		  "required":["name"],
		  "additionalProperties":false
		}`),
		GoImpl:     llmtoolsgoSpec.GoToolImpl{FuncID: FuncIDTasksDetails},
		CreatedAt:  llmtoolsgoSpec.SchemaStartTime,
		ModifiedAt: llmtoolsgoSpec.SchemaStartTime,
	}
}

func TasksDeleteTool() llmtoolsgoSpec.Tool {
	return llmtoolsgoSpec.Tool{
		SchemaVersion: llmtoolsgoSpec.SchemaVersion,
		ID:            "019c52aa-7d10-7bd0-9e41-52b6c11d0405",
		Slug:          "tasks.delete",
		Version:       "v1.0.0",
		DisplayName:   "Tasks Delete",
		Description:   "Permanently delete a saved task.",
		Tags:          []string{"tasks"},
		ArgSchema: llmtoolsgoSpec.JSONSchema(`{
		  "$schema":"http://json-schema.org/draft-07/schema#",
		  "type":"object",
		  "properties":{
		    "name":{"type":"string","description":"Exact task name (case-sensitive)."}
		  },
		  "required":["name"],
		  "additionalProperties":false
		}`),
		GoImpl:     llmtoolsgoSpec.GoToolImpl{FuncID: FuncIDTasksDelete},
		CreatedAt:  llmtoolsgoSpec.SchemaStartTime,
		ModifiedAt: llmtoolsgoSpec.SchemaStartTime,
	}
}

func TasksRunScriptTool() llmtoolsgoSpec.Tool {
	return llmtoolsgoSpec.Tool{
		SchemaVersion: llmtoolsgoSpec.SchemaVersion,
		ID:            "019c52aa-7d10-7bd0-9e41-52b6c11d0406",
		Slug:          "tasks.run_script",
		Version:       "v1.0.0",
		DisplayName:   "Tasks Run Script",
		Description:   "Execute a named script from a saved task. Python scripts read arguments from the task_args list; command scripts get arguments appended to the command line.",
		Tags:          []string{"tasks", "exec"},
		ArgSchema: llmtoolsgoSpec.JSONSchema(`{
		  "$schema":"http://json-schema.org/draft-07/schema#",
		  "type":"object",
		  "properties":{
		    "task":{"type":"string","description":"Task name containing the script."},
		    "script":{"type":"string","description":"Script name within the task (case-sensitive, first match wins)."},
		    "args":{"type":"array","items":{}}
		  },
		  "required":["task","script"],
		  "additionalProperties":false
		}`),
		GoImpl:     llmtoolsgoSpec.GoToolImpl{FuncID: FuncIDTasksRunScript},
		CreatedAt:  llmtoolsgoSpec.SchemaStartTime,
		ModifiedAt: llmtoolsgoSpec.SchemaStartTime,
	}
}

func ExecCommandTool() llmtoolsgoSpec.Tool {
	return llmtoolsgoSpec.Tool{
		SchemaVersion: llmtoolsgoSpec.SchemaVersion,
		ID:            "019c52aa-7d10-7bd0-9e41-52b6c11d0407",
		Slug:          "exec.command",
		Version:       "v1.0.0",
		DisplayName:   "Exec Command",
		Description:   "Run one shell command line and return its output.",
		Tags:          []string{"exec", "shell"},
		ArgSchema: llmtoolsgoSpec.JSONSchema(`{
		  "$schema":"http://json-schema.org/draft-07/schema#",
		  "type":"object",
		  "properties":{
		    "command":{"type":"string"}
		  },
		  "required":["command"],
		  "additionalProperties":false
		}`),
		GoImpl:     llmtoolsgoSpec.GoToolImpl{FuncID: FuncIDExecCommand},
		CreatedAt:  llmtoolsgoSpec.SchemaStartTime,
		ModifiedAt: llmtoolsgoSpec.SchemaStartTime,
	}
}

func ExecPythonTool() llmtoolsgoSpec.Tool {
	return llmtoolsgoSpec.Tool{
		SchemaVersion: llmtoolsgoSpec.SchemaVersion,
		ID:            "019c52aa-7d10-7bd0-9e41-52b6c11d0408",
		Slug:          "exec.python",
		Version:       "v1.0.0",
		DisplayName:   "Exec Python",
		Description:   "Execute Python source text and return captured stdout. Secrets are available via os.environ.",
		Tags:          []string{"exec", "python"},
		ArgSchema: llmtoolsgoSpec.JSONSchema(`{
		  "$schema":"http://json-schema.org/draft-07/schema#",
		  "type":"object",
		  "properties":{
		    "code":{"type":"string"}
		  },
		  "required":["code"],
		  "additionalProperties":false
		}`),
		GoImpl:     llmtoolsgoSpec.GoToolImpl{FuncID: FuncIDExecPython},
		CreatedAt:  llmtoolsgoSpec.SchemaStartTime,
		ModifiedAt: llmtoolsgoSpec.SchemaStartTime,
	}
}

func ExecPackagesTool() llmtoolsgoSpec.Tool {
	return llmtoolsgoSpec.Tool{
		SchemaVersion: llmtoolsgoSpec.SchemaVersion,
		ID:            "019c52aa-7d10-7bd0-9e41-52b6c11d0409",
		Slug:          "exec.packages",
		Version:       "v1.0.0",
		DisplayName:   "Exec Packages",
		Description:   "List the Python interpreter version and installed packages; check before importing libraries.",
		Tags:          []string{"exec", "python"},
		ArgSchema: llmtoolsgoSpec.JSONSchema(`{
		  "$schema":"http://json-schema.org/draft-07/schema#",
		  "type":"object",
		  "properties":{},
		  "additionalProperties":false
		}`),
		GoImpl:     llmtoolsgoSpec.GoToolImpl{FuncID: FuncIDExecPackages},
		CreatedAt:  llmtoolsgoSpec.SchemaStartTime,
		ModifiedAt: llmtoolsgoSpec.SchemaStartTime,
	}
}

func WebFetchTool() llmtoolsgoSpec.Tool {
	return llmtoolsgoSpec.Tool{
		SchemaVersion: llmtoolsgoSpec.SchemaVersion,
		ID:            "019c52aa-7d10-7bd0-9e41-52b6c11d040a",
		Slug:          "web.fetch",
		Version:       "v1.0.0",
		DisplayName:   "Web Fetch",
		Description:   "Retrieve a web page and return its content as readable plain text.",
		Tags:          []string{"web", "fetch"},
		ArgSchema: llmtoolsgoSpec.JSONSchema(`{
		  "$schema":"http://json-schema.org/draft-07/schema#",
		  "type":"object",
		  "properties":{
		    "url":{"type":"string"}
		  },
		  "required":["url"],
		  "additionalProperties":false
		}`),
		GoImpl:     llmtoolsgoSpec.GoToolImpl{FuncID: FuncIDWebFetch},
		CreatedAt:  llmtoolsgoSpec.SchemaStartTime,
		ModifiedAt: llmtoolsgoSpec.SchemaStartTime,
	}
}

func SecretsListTool() llmtoolsgoSpec.Tool {
	return llmtoolsgoSpec.Tool{
		SchemaVersion: llmtoolsgoSpec.SchemaVersion,
		ID:            "019c52aa-7d10-7bd0-9e41-52b6c11d040b",
		Slug:          "secrets.list",
		Version:       "v1.0.0",
		DisplayName:   "Secrets List",
		Description:   "List available secret keys and descriptions (never values). Access secrets in Python via os.environ.get.",
		Tags:          []string{"secrets"},
		ArgSchema: llmtoolsgoSpec.JSONSchema(`{
		  "$schema":"http://json-schema.org/draft-07/schema#",
		  "type":"object",
		  "properties":{},
		  "additionalProperties":false
		}`),
		GoImpl:     llmtoolsgoSpec.GoToolImpl{FuncID: FuncIDSecretsList},
		CreatedAt:  llmtoolsgoSpec.SchemaStartTime,
		ModifiedAt: llmtoolsgoSpec.SchemaStartTime,
	}
}

func HelpTool() llmtoolsgoSpec.Tool {
	return llmtoolsgoSpec.Tool{
		SchemaVersion: llmtoolsgoSpec.SchemaVersion,
		ID:            "019c52aa-7d10-7bd0-9e41-52b6c11d040c",
		Slug:          "help",
		Version:       "v1.0.0",
		DisplayName:   "Help",
		Description:   "Usage guide for the Nash tool set.",
		Tags:          []string{"help"},
		ArgSchema: llmtoolsgoSpec.JSONSchema(`{
		  "$schema":"http://json-schema.org/draft-07/schema#",
		  "type":"object",
		  "properties":{},
		  "additionalProperties":false
		}`),
		GoImpl:     llmtoolsgoSpec.GoToolImpl{FuncID: FuncIDHelp},
		CreatedAt:  llmtoolsgoSpec.SchemaStartTime,
		ModifiedAt: llmtoolsgoSpec.SchemaStartTime,
	}
}
