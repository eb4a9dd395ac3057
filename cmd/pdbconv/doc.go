// 12 Oct 2026

/*
Pdbconv reads pdb files, tells you what is in them and writes them out
again as clean, eighty column pdb.

Usage:
	pdbconv info file...
	pdbconv convert [input] [output]
	pdbconv batch -o outdir [-j workers] file...
	pdbconv version

If no output file is given to convert, stdout will be used.
If no input file is given, stdin will be used.
Input files may be gzipped. mmCIF files are recognised and refused.

batch writes each input to outdir, named after the input with
everything after the first dot replaced, so 1abc.ent.gz becomes
outdir/1abc.pdb. It goes on after a failure, but the exit status
says something went wrong.

Logging goes nowhere unless you ask for it with --log, which takes
"stdout" or a file name. The defaults come from the environment
variables MOLSTRUCT_LOG, MOLSTRUCT_LOG_LEVEL and MOLSTRUCT_WORKERS.
*/
package main
