// Copyright © 2021. All rights reserved.
// Author: Ghiunhan Mamut.
// Contacts: venerix@redcorelinux.org, https://github.com/V3n3RiX
// License: https://opensource.org/licenses/GPL-3.0

package calamares

import (
	"strconv"

	"github.com/qioalice/ekago/v2/ekaerr"
	"github.com/qioalice/ekago/v2/ekaunsafe"

	"github.com/modern-go/reflect2"
)

type (
	/*
	bundleNode represents the node of translation bundle that contains:

	 - Its data as KV storage, K is a translation key, V is a language phrase.
	   Field content stores these phrases.

	 - Child (derived) bundleNode s.
	   E.g: if translate key is "a/b", and the current node is root node,
	   then subNodes will contain bundleNode by a key "a"
	   with the translate key "b" that represents requested phrase.
	*/
	bundleNode struct {
		parent   *Bundle
		subNodes map[string]*bundleNode
		content  map[string]string
	}
)

/*
subNode returns a bundleNode with the given name
from the current bundleNode's subNodes map.

If 2nd argument is true,
the new empty bundleNode will be created and initialized,
if there is no bundleNode with the given name in subNodes map.
If it's false, nil is returned.
*/
func (n *bundleNode) subNode(name string, createIfNotExist bool) *bundleNode {
	subNode := n.subNodes[name]

	if subNode == nil && createIfNotExist {
		subNode = n.parent.makeSubNode()
		n.subNodes[name] = subNode
	}

	return subNode
}

/*
applyRecursively calls passed callback cb passing the current bundleNode,
treating it as a root, and then doing the same work for each bundleNode from
subNodes recursively.

Each embedded bundleNode (no matter how deep it is) will be processed.
Order is not guaranteed.

Requirements:
 - Current bundleNode (n) != nil, panic otherwise.
 - Passed callback (cb) != nil, panic otherwise.
*/
func (n *bundleNode) applyRecursively(cb func(*bundleNode)) {
	cb(n)
	for _, subNode := range n.subNodes {
		subNode.applyRecursively(cb)
	}
}

/*
scan walks over passed map[string]interface{},
treating it like a decoded source of bundle's content for the current bundleNode,
doing next things:

 - If a value is a basic Golang type (such as string, bool, int, uint, float, nil),
   that value is saved with corresponding key to the content
   using store() method.

 - If a value is the same type map (map[string]interface{}),
   the embedded bundleNode by the corresponding key
   will be either extracted from the subNodes or created an empty new one,
   and scan() will be called recursively for that sub bundleNode and that map.

 - If a value has any other type,
   it's an error, even if it's array (arrays are prohibited).
*/
func (n *bundleNode) scan(from map[string]interface{}) *ekaerr.Error {

	const s = "Failed to scan a key-value component. "

	var err *ekaerr.Error
	for key, value := range from {
		switch rtype := reflect2.RTypeOf(value); {

		case key == "":
			err = ekaerr.IllegalFormat.
				New(s + "Key is empty.")

		case rtype == 0:
			n.store(key, "<undefined>")

		case rtype == ekaunsafe.RTypeString():
			n.store(key, value.(string))

		case rtype == ekaunsafe.RTypeBool():
			b := *(*bool)(ekaunsafe.TakeRealAddr(value))
			value := "false"
			if b {
				value = "true"
			}
			n.store(key, value)

		case ekaunsafe.RTypeIsIntAny(rtype):
			i64 := *(*int64)(ekaunsafe.TakeRealAddr(value))
			n.store(key, strconv.FormatInt(i64, 10))

		case ekaunsafe.RTypeIsUintAny(rtype):
			u64 := *(*uint64)(ekaunsafe.TakeRealAddr(value))
			n.store(key, strconv.FormatUint(u64, 10))

		case ekaunsafe.RTypeIsFloatAny(rtype):
			f64 := *(*float64)(ekaunsafe.TakeRealAddr(value))
			bitSize := 32
			if rtype == ekaunsafe.RTypeFloat64() {
				bitSize = 64
			}
			n.store(key, strconv.FormatFloat(f64, 'f', 2, bitSize))

		case rtype == ekaunsafe.RTypeMapStringInterface():
			embeddedMap := value.(map[string]interface{})
			err = n.subNode(key, true).scan(embeddedMap)

		default:
			err = ekaerr.IllegalFormat.
				New(s + "Unexpected type of value.").
				AddFields("calamares_source_value_type", reflect2.TypeOf(value).String())
		}

		//goland:noinspection GoNilness
		if err.IsNotNil() {
			return err.
				AddMessage(s).
				AddFields("calamares_source_key", key).
				Throw()
		}
	}

	return nil
}

/*
store saves passed key, value to the content map.

A bundle is always rebuilt whole from one storage document,
and one decoded document cannot contain duplicated keys at the same level,
so overwriting checks the old two-phase loading had are not needed here.
*/
func (n *bundleNode) store(key, value string) {
	n.content[key] = value
	n.parent.phrasesCount++
}
