// Command skinini reads skin.ini files and prints the configuration a game
// client would resolve from them.
//
// Subcommands:
//
//	mania       resolve the [Mania] sections, optionally filtered by --keys
//	show        resolve General, Colours, Fonts, CatchTheBeat and Mania
//	sections    list raw sections in file order
//	preprocess  print the text handed to the INI tokenizer
//	watch       re-resolve on every save
//	config      init or validate the tool configuration
package main
