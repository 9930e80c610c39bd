package tasktool

// HelpText is the static usage guide returned by the help tool.
const HelpText = `Nash tool set usage guide.

Core workflow:
1. Prefer saved tasks. Call tasks.list first; if a saved task matches the
   request, read it with tasks.get and follow its prompt instead of
   improvising.
2. Audit before running. Use tasks.details to inspect the full script code
   of a task before executing anything from it.
3. Execute saved scripts with tasks.run_script(task=..., script=..., args=[...]).
   Python scripts receive args through a task_args list prepended to the
   code; command scripts get args appended to the command line.

Ad-hoc execution:
- exec.command runs a single shell command line and returns stdout/stderr.
  The shell session persists between calls, so cd and environment changes
  carry over.
- exec.python executes Python source and returns captured stdout. Print
  what you want to see. Check exec.packages before importing third-party
  libraries.

Tasks:
- tasks.save(name, prompt, scripts) creates or fully replaces a task. The
  prompt should hold complete instructions; scripts are optional named
  python/command snippets.
- tasks.delete(name) removes a task permanently.

Other tools:
- web.fetch(url) retrieves a page as readable plain text.
- secrets.list shows available secret keys and descriptions, never values.
  Inside Python, read a secret with os.environ.get('KEY_NAME').

All tools return a single report string; errors are explained in the
report text rather than raised.`
