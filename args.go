// Copyright © 2021. All rights reserved.
// Author: Ghiunhan Mamut.
// Contacts: venerix@redcorelinux.org, https://github.com/V3n3RiX
// License: https://opensource.org/licenses/GPL-3.0

package calamares

type (
	/*
	Args represents map of arguments
	that are used for interpolating translated phrase.
	*/
	Args map[string]interface{}
)
