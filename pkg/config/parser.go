package config

import (
	"strings"

	"github.com/beevik/etree"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/gestured/pkg/errors"
	"github.com/arthur-debert/gestured/pkg/logging"
	"github.com/arthur-debert/gestured/pkg/types"
)

// Document structure:
//
//	<gestured>
//	  <application name="firefox,chrome">
//	    <gesture type="SWIPE" fingers="3" direction="LEFT">
//	      <action type="RUN_COMMAND">
//	        <command>echo hi</command>
//	      </action>
//	    </gesture>
//	  </application>
//	</gestured>
//
// Element names below the action node are free-form; each child becomes one
// action setting.
const (
	applicationTag = "application"
	gestureTag     = "gesture"
	actionTag      = "action"
)

// Parser reads a configuration document and populates the binding store.
// It is deliberately permissive: unknown or missing attributes yield empty
// strings, and no gesture or action type validation happens here. Semantic
// validation belongs to whatever consumes the store.
type Parser struct {
	store types.Store
	fs    types.FS
	log   zerolog.Logger
}

// NewParser creates a parser that emits bindings to the given store
func NewParser(st types.Store, fsys types.FS) *Parser {
	return &Parser{
		store: st,
		fs:    fsys,
		log:   logging.GetLogger("config.parser"),
	}
}

// ParseFile loads the document at path and replaces the store's contents
// with the bindings it declares. The document is parsed structurally before
// the store is touched, so a malformed or absent file leaves the store
// exactly as it was.
func (p *Parser) ParseFile(path string) error {
	data, err := p.fs.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse,
			"error reading configuration file %s", path)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse,
			"error parsing configuration file %s", path)
	}

	root := doc.Root()
	if root == nil {
		return errors.Newf(errors.ErrConfigParse,
			"configuration file %s has no root element", path)
	}

	// Structural parse succeeded; from here on the document fully replaces
	// whatever the store held before.
	p.store.Clear()
	p.parseApplicationNodes(root)

	return nil
}

func (p *Parser) parseApplicationNodes(root *etree.Element) {
	bindings := 0

	for _, applicationNode := range root.SelectElements(applicationTag) {
		applications := strings.Split(applicationNode.SelectAttrValue("name", ""), ",")

		for _, gestureNode := range applicationNode.SelectElements(gestureTag) {
			gestureType := gestureNode.SelectAttrValue("type", "")
			fingers := gestureNode.SelectAttrValue("fingers", "")
			direction := gestureNode.SelectAttrValue("direction", "")

			var actionType string
			actionSettings := make(map[string]string)
			if actionNode := gestureNode.SelectElement(actionTag); actionNode != nil {
				actionType = actionNode.SelectAttrValue("type", "")
				for _, settingNode := range actionNode.ChildElements() {
					// A repeated setting name keeps the last occurrence
					actionSettings[settingNode.Tag] = settingNode.Text()
				}
			}

			// Register the gesture once per listed application
			for _, application := range applications {
				p.store.SaveGestureConfig(application, gestureType, fingers,
					direction, actionType, actionSettings)
				bindings++
			}
		}
	}

	p.log.Debug().Int("bindings", bindings).Msg("Configuration parsed")
}
